package sales

import (
	"context"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que orden, stock, kardex y plan de
// crédito se escriban (o se reviertan) como una sola unidad.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		orderRepo repository.SalesOrderRepository,
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
		creditRepo repository.CreditRepository,
		statusRepo repository.StatusRepository,
	) error) error
}

// ReceiptLine línea del comprobante con el nombre del producto resuelto.
type ReceiptLine struct {
	Line        *entity.SalesOrderLine
	ProductName string
}

// ReceiptData todo lo necesario para renderizar el comprobante de una venta.
type ReceiptData struct {
	Order        *entity.SalesOrder
	Lines        []ReceiptLine
	Schedule     *entity.CreditSchedule
	Installments []*entity.Installment
}

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data *ReceiptData) ([]byte, error)
}
