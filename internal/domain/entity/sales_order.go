package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de una venta.
const (
	PaymentMethodCash   = "CASH"
	PaymentMethodCredit = "CREDIT"
)

// Estados de una orden (venta) y sus líneas.
const (
	OrderStatusActive = "ACTIVE"
	OrderStatusVoided = "VOIDED"
)

// SalesOrder representa la cabecera de una venta.
// Number es el consecutivo legible (F-000123). La cabecera solo se muta al anular:
// Status pasa de ACTIVE a VOIDED y no hay vuelta atrás.
type SalesOrder struct {
	ID            string
	Number        string // consecutivo F-%06d reservado vía secuencia
	CustomerID    string
	UserID        string // usuario que registró la venta
	PaymentMethod string // CASH | CREDIT
	Status        string // ACTIVE | VOIDED
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SalesOrderLine es una línea de venta. Inmutable una vez creada; su Status
// solo refleja el de la cabecera.
// Subtotal = Quantity×UnitPrice − Discount. El descuento puede exceder el
// producto y dejar el subtotal negativo; se persiste tal cual.
type SalesOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Subtotal  decimal.Decimal
	Status    string // espejo del estado de la cabecera
}
