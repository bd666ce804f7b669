package dto

import "github.com/shopspring/decimal"

// KardexEntryResponse asiento del kardex en respuestas.
type KardexEntryResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Direction   string          `json:"direction"` // INBOUND | OUTBOUND
	Origin      string          `json:"origin"`    // SALE | PURCHASE | ADJUSTMENT
	ReferenceID string          `json:"reference_id"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Comment     string          `json:"comment,omitempty"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
