package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

// CreditRepo implementación de CreditRepository (usable con pool o tx).
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

// CreateSchedule persiste el plan de crédito.
func (r *CreditRepo) CreateSchedule(schedule *entity.CreditSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	query := `
		INSERT INTO credit_schedules (id, order_id, total, outstanding, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		schedule.ID, schedule.OrderID, schedule.Total, schedule.Outstanding,
		schedule.StartDate, schedule.EndDate, schedule.Status, schedule.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("la venta ya tiene plan de crédito: %w", err)
		}
		return fmt.Errorf("insert credit schedule: %w", err)
	}
	return nil
}

// CreateInstallment persiste una cuota.
func (r *CreditRepo) CreateInstallment(installment *entity.Installment) error {
	if installment.ID == "" {
		installment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO installments (id, schedule_id, seq, due_date, amount_due, amount_paid, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.ScheduleID, installment.Seq, installment.DueDate,
		installment.AmountDue, installment.AmountPaid, installment.Status,
	)
	if err != nil {
		return fmt.Errorf("insert installment: %w", err)
	}
	return nil
}

// GetScheduleByOrderID obtiene el plan de una venta. nil, nil si no tiene.
func (r *CreditRepo) GetScheduleByOrderID(orderID string) (*entity.CreditSchedule, error) {
	query := `
		SELECT id, order_id, total, outstanding, start_date, end_date, status, created_at
		FROM credit_schedules WHERE order_id = $1`
	var s entity.CreditSchedule
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(
		&s.ID, &s.OrderID, &s.Total, &s.Outstanding, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit schedule: %w", err)
	}
	return &s, nil
}

// GetInstallments devuelve las cuotas del plan ordenadas por secuencia.
func (r *CreditRepo) GetInstallments(scheduleID string) ([]*entity.Installment, error) {
	query := `
		SELECT id, schedule_id, seq, due_date, amount_due, amount_paid, status
		FROM installments WHERE schedule_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("get installments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Installment
	for rows.Next() {
		var i entity.Installment
		if err := rows.Scan(&i.ID, &i.ScheduleID, &i.Seq, &i.DueDate,
			&i.AmountDue, &i.AmountPaid, &i.Status); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// VoidByOrderID marca el plan y sus cuotas como VOIDED sin borrar filas:
// el historial de pagos queda como rastro de auditoría.
func (r *CreditRepo) VoidByOrderID(orderID string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE installments SET status = $2
		WHERE schedule_id IN (SELECT id FROM credit_schedules WHERE order_id = $1)`,
		orderID, entity.InstallmentStatusVoided)
	if err != nil {
		return fmt.Errorf("void installments: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`UPDATE credit_schedules SET status = $2 WHERE order_id = $1`,
		orderID, entity.ScheduleStatusVoided)
	if err != nil {
		return fmt.Errorf("void credit schedule: %w", err)
	}
	return nil
}
