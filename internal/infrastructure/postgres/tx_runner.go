package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/purchases"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/sales"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and purchases.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ purchases.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales inicia una transacción con los repos del motor de ventas
// (creación y anulación) y hace Commit o Rollback.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	orderRepo repository.SalesOrderRepository,
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
	creditRepo repository.CreditRepository,
	statusRepo repository.StatusRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewSalesOrderRepository(tx)
	stockRepo := NewStockRepository(tx)
	ledgerRepo := NewLedgerRepository(tx)
	creditRepo := NewCreditRepository(tx)
	statusRepo := NewStatusRepository(tx)

	if err := fn(orderRepo, stockRepo, ledgerRepo, creditRepo, statusRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase inicia una transacción con los repos del motor de compras.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewPurchaseOrderRepository(tx)
	stockRepo := NewStockRepository(tx)
	ledgerRepo := NewLedgerRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, stockRepo, ledgerRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
