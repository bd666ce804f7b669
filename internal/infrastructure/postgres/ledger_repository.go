package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: los asientos no se actualizan ni se borran.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, product_id, direction, origin, reference_id, quantity, unit_cost, comment, status, created_by, created_at`

// Append inserta un asiento. Sin validación de negocio: el motor de órdenes
// decide qué se asienta.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO kardex (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Direction, entry.Origin, entry.ReferenceID,
		entry.Quantity, entry.UnitCost, nullIfEmpty(entry.Comment), entry.Status,
		nullIfEmpty(entry.CreatedBy), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append kardex: %w", err)
	}
	return nil
}

// ListByProduct lista asientos de un producto en un rango de fechas.
func (r *LedgerRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM kardex WHERE product_id = $1`
	args := []any{productID}
	query, args = appendDateRange(query, args, from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(query, args)
}

// List lista asientos de todos los productos en un rango de fechas.
func (r *LedgerRepo) List(from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM kardex WHERE 1=1`
	var args []any
	query, args = appendDateRange(query, args, from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(query, args)
}

func appendDateRange(query string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	return query, args
}

func (r *LedgerRepo) list(query string, args []any) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list kardex: %w", err)
	}
	defer rows.Close()

	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var comment, createdBy *string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Direction, &e.Origin, &e.ReferenceID,
			&e.Quantity, &e.UnitCost, &comment, &e.Status, &createdBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan kardex: %w", err)
		}
		if comment != nil {
			e.Comment = *comment
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
