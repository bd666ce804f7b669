package repository

import "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"

// CreditRepository define el puerto de persistencia para planes de crédito y cuotas.
type CreditRepository interface {
	CreateSchedule(schedule *entity.CreditSchedule) error
	CreateInstallment(installment *entity.Installment) error
	// GetScheduleByOrderID devuelve nil, nil si la venta no tiene plan.
	GetScheduleByOrderID(orderID string) (*entity.CreditSchedule, error)
	GetInstallments(scheduleID string) ([]*entity.Installment, error)
	// VoidByOrderID marca el plan de la venta y todas sus cuotas como VOIDED.
	// Conserva las filas y el historial de pagos.
	VoidByOrderID(orderID string) error
}
