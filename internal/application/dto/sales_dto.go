package dto

import "github.com/shopspring/decimal"

// SalesLineRequest línea de venta (producto, cantidad, precio, descuento opcional).
type SalesLineRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Discount  *decimal.Decimal `json:"discount,omitempty"` // monto, no porcentaje; nil = 0
}

// CreditConfigRequest configuración de cuotas para ventas a crédito.
type CreditConfigRequest struct {
	Installments int    `json:"installments"`
	FirstDueDate string `json:"first_due_date"`         // YYYY-MM-DD
	DayInterval  int    `json:"day_interval,omitempty"` // días entre cuotas; 0 = default (30)
}

// CreateSalesOrderRequest body para POST /api/sales.
type CreateSalesOrderRequest struct {
	CustomerID    string               `json:"customer_id"`
	PaymentMethod string               `json:"payment_method"` // CASH | CREDIT
	Note          string               `json:"note,omitempty"`
	Credit        *CreditConfigRequest `json:"credit,omitempty"` // obligatorio si payment_method = CREDIT
	Lines         []SalesLineRequest   `json:"lines"`
}

// SalesOrderResponse venta completa (cabecera + líneas + plan de crédito).
type SalesOrderResponse struct {
	ID            string                  `json:"id"`
	Number        string                  `json:"number"`
	CustomerID    string                  `json:"customer_id"`
	UserID        string                  `json:"user_id"`
	PaymentMethod string                  `json:"payment_method"`
	Status        string                  `json:"status"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	Tax           decimal.Decimal         `json:"tax"`
	Total         decimal.Decimal         `json:"total"`
	Note          string                  `json:"note,omitempty"`
	CreatedAt     string                  `json:"created_at"`
	Lines         []SalesLineResponse     `json:"lines"`
	Credit        *CreditScheduleResponse `json:"credit,omitempty"`
}

// SalesLineResponse línea de venta en respuestas.
type SalesLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Status    string          `json:"status"`
}

// CreditScheduleResponse plan de crédito con sus cuotas.
type CreditScheduleResponse struct {
	ID           string                `json:"id"`
	Total        decimal.Decimal       `json:"total"`
	Outstanding  decimal.Decimal       `json:"outstanding"`
	StartDate    string                `json:"start_date"`
	Status       string                `json:"status"`
	Installments []InstallmentResponse `json:"installments"`
}

// InstallmentResponse cuota del plan.
type InstallmentResponse struct {
	ID         string          `json:"id"`
	Seq        int             `json:"seq"`
	DueDate    string          `json:"due_date"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Status     string          `json:"status"`
}
