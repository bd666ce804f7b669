package sales

import (
	"context"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta: resuelve nombres de
// producto y delega el render al generador inyectado.
type ReceiptUseCase struct {
	orderRepo   repository.SalesOrderRepository
	productRepo repository.ProductRepository
	creditRepo  repository.CreditRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	orderRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	creditRepo repository.CreditRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		creditRepo:  creditRepo,
		generator:   generator,
	}
}

// Execute devuelve los bytes del PDF del comprobante.
func (uc *ReceiptUseCase) Execute(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	lines, err := uc.orderRepo.GetLines(orderID)
	if err != nil {
		return nil, err
	}

	data := &ReceiptData{Order: order, Lines: make([]ReceiptLine, 0, len(lines))}
	for _, line := range lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		// Producto borrado del catálogo: el comprobante muestra el ID.
		name := line.ProductID
		if product != nil {
			name = product.Name
		}
		data.Lines = append(data.Lines, ReceiptLine{Line: line, ProductName: name})
	}

	data.Schedule, err = uc.creditRepo.GetScheduleByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if data.Schedule != nil {
		data.Installments, err = uc.creditRepo.GetInstallments(data.Schedule.ID)
		if err != nil {
			return nil, err
		}
	}

	return uc.generator.GenerateReceipt(ctx, data)
}
