package purchases

import (
	"context"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el motor de compras.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
		productRepo repository.ProductRepository,
	) error) error
}
