package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuota de crédito.
const (
	InstallmentStatusPending = "PENDING"
	InstallmentStatusPartial = "PARTIAL"
	InstallmentStatusPaid    = "PAID"
	InstallmentStatusVoided  = "VOIDED" // la venta asociada fue anulada
)

// Estados de un plan de crédito.
const (
	ScheduleStatusActive = "ACTIVE"
	ScheduleStatusVoided = "VOIDED"
)

// CreditSchedule es el plan de financiación 1:1 con una venta a crédito.
// Outstanding baja conforme el cobrador aplica pagos a las cuotas.
// Al anular la venta el plan y sus cuotas pasan a VOIDED (se conserva el
// historial de pagos; no se borran filas).
type CreditSchedule struct {
	ID          string
	OrderID     string
	Total       decimal.Decimal
	Outstanding decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	Status      string // ACTIVE | VOIDED
	CreatedAt   time.Time
}

// Installment es una cuota del plan de crédito.
//
// La aplicación de pagos es responsabilidad del módulo de cobranza, externo a
// este motor. Contrato que ese módulo debe cumplir: el pago no puede exceder
// AmountDue−AmountPaid; incrementa AmountPaid; recalcula Status (PAID cuando
// AmountPaid == AmountDue, PARTIAL cuando 0 < AmountPaid < AmountDue) y
// descuenta el mismo valor del Outstanding del plan.
type Installment struct {
	ID         string
	ScheduleID string
	Seq        int // 1..N
	DueDate    time.Time
	AmountDue  decimal.Decimal
	AmountPaid decimal.Decimal
	Status     string // PENDING | PARTIAL | PAID | VOIDED
}
