package repository

import "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"

// SalesOrderRepository define el puerto de persistencia para ventas.
type SalesOrderRepository interface {
	// NextNumber reserva y devuelve el siguiente consecutivo de venta de forma
	// atómica (secuencia de la BD). El motor lo formatea como F-%06d.
	NextNumber() (int64, error)
	Create(order *entity.SalesOrder) error
	CreateLine(line *entity.SalesOrderLine) error
	// GetByID devuelve nil, nil si la orden no existe.
	GetByID(id string) (*entity.SalesOrder, error)
	// GetByIDForUpdate bloquea la cabecera (SELECT FOR UPDATE) para la anulación.
	GetByIDForUpdate(id string) (*entity.SalesOrder, error)
	GetLines(orderID string) ([]*entity.SalesOrderLine, error)
	UpdateStatus(orderID, status string) error
	// UpdateLinesStatus refleja el estado de la cabecera en todas las líneas.
	UpdateLinesStatus(orderID, status string) error
}
