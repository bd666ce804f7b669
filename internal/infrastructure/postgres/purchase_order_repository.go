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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository (usable con pool o tx).
// Solo INSERT y SELECT: las compras no se modifican después de creadas.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// NextNumber reserva el siguiente consecutivo de compra en la secuencia.
func (r *PurchaseOrderRepo) NextNumber() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('purchase_order_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next purchase number: %w", err)
	}
	return n, nil
}

// Create persiste la cabecera de la compra.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_orders (id, number, supplier_id, user_id, subtotal, tax, total, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, order.SupplierID, order.UserID,
		order.Subtotal, order.Tax, order.Total, nullIfEmpty(order.Note), order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de compra duplicado: %w", err)
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de compra.
func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_order_lines (id, order_id, product_id, quantity, unit_cost, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ProductID, line.Quantity, line.UnitCost, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera por ID. nil, nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, number, supplier_id, user_id, subtotal, tax, total, note, created_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	var note *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Number, &o.SupplierID, &o.UserID,
		&o.Subtotal, &o.Tax, &o.Total, &note, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if note != nil {
		o.Note = *note
	}
	return &o, nil
}

// GetLines devuelve las líneas de la compra en orden de inserción (line_no lo
// asigna la BD al insertar).
func (r *PurchaseOrderRepo) GetLines(orderID string) ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_cost, subtotal
		FROM purchase_order_lines WHERE order_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitCost, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
