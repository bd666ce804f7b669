package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección de un movimiento del kardex.
const (
	DirectionInbound  = "INBOUND"  // entrada
	DirectionOutbound = "OUTBOUND" // salida
)

// Origen del movimiento.
const (
	OriginSale       = "SALE"
	OriginPurchase   = "PURCHASE"
	OriginAdjustment = "ADJUSTMENT" // incluye reversas por anulación de venta
)

// LedgerEntry es un asiento del kardex: el diario append-only de todo evento
// que afecta stock. Se escribe exactamente un asiento por línea de cada
// operación, incluidas las entradas compensatorias al anular una venta.
// Nunca se actualiza ni se borra.
type LedgerEntry struct {
	ID          string
	ProductID   string
	Direction   string // INBOUND | OUTBOUND
	Origin      string // SALE | PURCHASE | ADJUSTMENT
	ReferenceID string // ID de la orden que lo causó
	Quantity    int
	UnitCost    decimal.Decimal
	Comment     string
	Status      string // ACTIVE | VOIDED (solo informativo; el asiento no se reversa, se compensa)
	CreatedBy   string
	CreatedAt   time.Time
}
