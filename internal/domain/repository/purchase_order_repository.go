package repository

import "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para compras.
// Solo creación y lectura: las compras son inmutables una vez registradas.
type PurchaseOrderRepository interface {
	// NextNumber reserva el siguiente consecutivo de compra (C-%06d).
	NextNumber() (int64, error)
	Create(order *entity.PurchaseOrder) error
	CreateLine(line *entity.PurchaseOrderLine) error
	// GetByID devuelve nil, nil si la compra no existe.
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetLines(orderID string) ([]*entity.PurchaseOrderLine, error)
}
