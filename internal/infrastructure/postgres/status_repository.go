package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo consulta la tabla de referencia de estados (usable con pool o tx).
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// GetByCode obtiene un estado sembrado por código. nil, nil si no está sembrado.
func (r *StatusRepo) GetByCode(code string) (*entity.Status, error) {
	var s entity.Status
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, name FROM statuses WHERE code = $1`, code).Scan(&s.ID, &s.Code, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}
