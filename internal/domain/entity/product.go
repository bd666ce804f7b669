package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (guitarras, accesorios, repuestos).
// Stock es la existencia total en tienda; el motor de órdenes es el único que la muta.
// LastCost se sobreescribe con el costo unitario de la última compra.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Stock       int             // existencia actual (invariante: >= 0)
	MinStock    int             // umbral de alerta de stock mínimo
	LastCost    decimal.Decimal // último costo de compra
	Price       decimal.Decimal // precio de venta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
