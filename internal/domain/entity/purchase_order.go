package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder representa la cabecera de una compra a proveedor.
// Las compras no tienen máquina de estados: una vez creadas son inmutables
// (anular o modificar una compra se rechaza en la API como operación no soportada).
type PurchaseOrder struct {
	ID         string
	Number     string // consecutivo C-%06d reservado vía secuencia
	SupplierID string
	UserID     string
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Note       string
	CreatedAt  time.Time
}

// PurchaseOrderLine es una línea de compra (producto, cantidad, costo unitario).
type PurchaseOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitCost  decimal.Decimal
	Subtotal  decimal.Decimal
}
