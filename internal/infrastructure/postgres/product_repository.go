package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, description, stock, min_stock, last_cost, price, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var description *string
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &description, &p.Stock, &p.MinStock,
		&p.LastCost, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description != nil {
		p.Description = *description
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por su código. nil, nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// UpdateLastCost sobreescribe el último costo de compra del producto.
func (r *ProductRepo) UpdateLastCost(productID string, cost decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET last_cost = $2, updated_at = now() WHERE id = $1`,
		productID, cost)
	if err != nil {
		return fmt.Errorf("update last cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update last cost: producto %s no existe", productID)
	}
	return nil
}

// List lista productos paginados por SKU.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var description *string
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &description, &p.Stock, &p.MinStock,
			&p.LastCost, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if description != nil {
			p.Description = *description
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
