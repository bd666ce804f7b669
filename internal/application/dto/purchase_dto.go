package dto

import "github.com/shopspring/decimal"

// PurchaseLineRequest línea de compra (producto, cantidad, costo unitario).
type PurchaseLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest body para POST /api/purchases.
type CreatePurchaseOrderRequest struct {
	SupplierID string                `json:"supplier_id"`
	Note       string                `json:"note,omitempty"`
	Lines      []PurchaseLineRequest `json:"lines"`
}

// PurchaseOrderResponse compra completa (cabecera + líneas).
type PurchaseOrderResponse struct {
	ID         string                 `json:"id"`
	Number     string                 `json:"number"`
	SupplierID string                 `json:"supplier_id"`
	UserID     string                 `json:"user_id"`
	Subtotal   decimal.Decimal        `json:"subtotal"`
	Tax        decimal.Decimal        `json:"tax"`
	Total      decimal.Decimal        `json:"total"`
	Note       string                 `json:"note,omitempty"`
	CreatedAt  string                 `json:"created_at"`
	Lines      []PurchaseLineResponse `json:"lines"`
}

// PurchaseLineResponse línea de compra en respuestas.
type PurchaseLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
