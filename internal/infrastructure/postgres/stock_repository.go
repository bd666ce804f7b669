package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La existencia vive en products.stock; este repo es el único que la toca.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia actual de un producto.
func (r *StockRepo) Get(productID string) (int, error) {
	var stock int
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM products WHERE id = $1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// GetForUpdate obtiene el producto completo y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, stock, min_stock, last_cost, price, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	var description *string
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&p.ID, &p.SKU, &p.Name, &description, &p.Stock, &p.MinStock,
		&p.LastCost, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	if description != nil {
		p.Description = *description
	}
	return &p, nil
}

// Adjust suma delta (firmado) a la existencia del producto dentro de la
// transacción del caller.
func (r *StockRepo) Adjust(productID string, delta int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		productID, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
