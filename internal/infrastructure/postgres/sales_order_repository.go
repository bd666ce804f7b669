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

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación de SalesOrderRepository (usable con pool o tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const salesOrderColumns = `id, number, customer_id, user_id, payment_method, status, subtotal, tax, total, note, created_at, updated_at`

// NextNumber reserva el siguiente consecutivo de venta en la secuencia.
// nextval es atómico: dos creadores concurrentes nunca reciben el mismo número.
func (r *SalesOrderRepo) NextNumber() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('sales_order_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sales number: %w", err)
	}
	return n, nil
}

// Create persiste la cabecera de la venta.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales_orders (` + salesOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, order.CustomerID, order.UserID, order.PaymentMethod,
		order.Status, order.Subtotal, order.Tax, order.Total, nullIfEmpty(order.Note),
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de venta duplicado: %w", err)
		}
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta.
func (r *SalesOrderRepo) CreateLine(line *entity.SalesOrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales_order_lines (id, order_id, product_id, quantity, unit_price, discount, subtotal, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ProductID, line.Quantity, line.UnitPrice,
		line.Discount, line.Subtotal, line.Status,
	)
	if err != nil {
		return fmt.Errorf("insert sales order line: %w", err)
	}
	return nil
}

func scanSalesOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	var note *string
	err := row.Scan(&o.ID, &o.Number, &o.CustomerID, &o.UserID, &o.PaymentMethod,
		&o.Status, &o.Subtotal, &o.Tax, &o.Total, &note, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if note != nil {
		o.Note = *note
	}
	return &o, nil
}

// GetByID obtiene la cabecera por ID. nil, nil si no existe.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`
	o, err := scanSalesOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate obtiene la cabecera y bloquea la fila (SELECT FOR UPDATE).
func (r *SalesOrderRepo) GetByIDForUpdate(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1 FOR UPDATE`
	o, err := scanSalesOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order for update: %w", err)
	}
	return o, nil
}

// GetLines devuelve las líneas de la venta en orden de inserción (line_no lo
// asigna la BD al insertar; los ids son uuid v4 y no ordenan).
func (r *SalesOrderRepo) GetLines(orderID string) ([]*entity.SalesOrderLine, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, discount, subtotal, status
		FROM sales_order_lines WHERE order_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get sales order lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesOrderLine
	for rows.Next() {
		var l entity.SalesOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice,
			&l.Discount, &l.Subtotal, &l.Status); err != nil {
			return nil, fmt.Errorf("scan sales order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateStatus voltea el estado de la cabecera.
func (r *SalesOrderRepo) UpdateStatus(orderID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_orders SET status = $2, updated_at = now() WHERE id = $1`,
		orderID, status)
	if err != nil {
		return fmt.Errorf("update sales order status: %w", err)
	}
	return nil
}

// UpdateLinesStatus refleja el estado de la cabecera en todas las líneas.
func (r *SalesOrderRepo) UpdateLinesStatus(orderID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_order_lines SET status = $2 WHERE order_id = $1`,
		orderID, status)
	if err != nil {
		return fmt.Errorf("update sales order lines status: %w", err)
	}
	return nil
}
