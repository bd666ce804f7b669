package repository

import "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"

// StockRepository es la abstracción dueña de la existencia por producto.
// Adjust aplica un delta firmado dentro de la transacción del caller; usado
// siempre vía TxRunner para que stock, kardex y órdenes se muevan juntos.
type StockRepository interface {
	// Get devuelve la existencia actual; domain.ErrNotFound si el producto no existe.
	Get(productID string) (int, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y la
	// devuelve completa. nil, nil si el producto no existe.
	GetForUpdate(productID string) (*entity.Product, error)
	// Adjust suma delta (puede ser negativo) a la existencia del producto.
	// domain.ErrNotFound si el producto no existe.
	Adjust(productID string, delta int) error
}
