package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El motor de órdenes no crea ni borra productos; solo lee y actualiza costo.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	UpdateLastCost(productID string, cost decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
}
