package sales_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/sales"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// memStore es una implementación en memoria de todos los puertos que usa el
// motor de ventas. El txRunner de test toma un snapshot antes de ejecutar y lo
// restaura si la función falla, reproduciendo el rollback de una transacción
// real. Así los tests de atomicidad verifican "no se escribió nada" de verdad.
type memStore struct {
	products     map[string]*entity.Product
	orders       map[string]*entity.SalesOrder
	lines        []*entity.SalesOrderLine
	ledger       []*entity.LedgerEntry
	schedules    map[string]*entity.CreditSchedule // por orderID
	installments []*entity.Installment
	statuses     map[string]*entity.Status
	salesSeq     int64
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		orders:    make(map[string]*entity.SalesOrder),
		schedules: make(map[string]*entity.CreditSchedule),
		statuses:  make(map[string]*entity.Status),
	}
}

// seedProduct registra un producto con la existencia indicada.
func (s *memStore) seedProduct(id, name string, stock int, price decimal.Decimal) {
	s.products[id] = &entity.Product{
		ID:    id,
		SKU:   "SKU-" + id,
		Name:  name,
		Stock: stock,
		Price: price,
	}
}

// seedVoidedStatus siembra el estado VOIDED (precondición de la anulación).
func (s *memStore) seedVoidedStatus() {
	s.statuses[entity.StatusCodeVoided] = &entity.Status{
		ID:   "status-voided",
		Code: entity.StatusCodeVoided,
		Name: "Anulada",
	}
}

// clone copia el store completo, valor por valor, para el snapshot de rollback.
func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.salesSeq = s.salesSeq
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.orders {
		cp := *v
		c.orders[k] = &cp
	}
	for _, v := range s.lines {
		cp := *v
		c.lines = append(c.lines, &cp)
	}
	for _, v := range s.ledger {
		cp := *v
		c.ledger = append(c.ledger, &cp)
	}
	for k, v := range s.schedules {
		cp := *v
		c.schedules[k] = &cp
	}
	for _, v := range s.installments {
		cp := *v
		c.installments = append(c.installments, &cp)
	}
	for k, v := range s.statuses {
		cp := *v
		c.statuses[k] = &cp
	}
	return c
}

// restore vuelca el snapshot sobre el store (rollback).
func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.orders = snap.orders
	s.lines = snap.lines
	s.ledger = snap.ledger
	s.schedules = snap.schedules
	s.installments = snap.installments
	s.statuses = snap.statuses
	s.salesSeq = snap.salesSeq
}

// ledgerFor filtra los asientos de un producto.
func (s *memStore) ledgerFor(productID string) []*entity.LedgerEntry {
	var out []*entity.LedgerEntry
	for _, e := range s.ledger {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out
}

// ── SalesOrderRepository ──────────────────────────────────────────────────────

func (s *memStore) NextNumber() (int64, error) {
	s.salesSeq++
	return s.salesSeq, nil
}

func (s *memStore) Create(order *entity.SalesOrder) error {
	if _, ok := s.orders[order.ID]; ok {
		return fmt.Errorf("orden duplicada %s", order.ID)
	}
	cp := *order
	s.orders[order.ID] = &cp
	return nil
}

func (s *memStore) CreateLine(line *entity.SalesOrderLine) error {
	cp := *line
	s.lines = append(s.lines, &cp)
	return nil
}

func (s *memStore) GetByID(id string) (*entity.SalesOrder, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (s *memStore) GetByIDForUpdate(id string) (*entity.SalesOrder, error) {
	return s.GetByID(id)
}

func (s *memStore) GetLines(orderID string) ([]*entity.SalesOrderLine, error) {
	var out []*entity.SalesOrderLine
	for _, l := range s.lines {
		if l.OrderID == orderID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) UpdateStatus(orderID, status string) error {
	o, ok := s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (s *memStore) UpdateLinesStatus(orderID, status string) error {
	for _, l := range s.lines {
		if l.OrderID == orderID {
			l.Status = status
		}
	}
	return nil
}

// ── StockRepository ───────────────────────────────────────────────────────────

func (s *memStore) Get(productID string) (int, error) {
	p, ok := s.products[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.Stock, nil
}

func (s *memStore) GetForUpdate(productID string) (*entity.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) Adjust(productID string, delta int) error {
	p, ok := s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

// ── LedgerRepository ──────────────────────────────────────────────────────────

func (s *memStore) Append(entry *entity.LedgerEntry) error {
	cp := *entry
	s.ledger = append(s.ledger, &cp)
	return nil
}

func (s *memStore) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	return s.ledgerFor(productID), nil
}

func (s *memStore) List(from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	return s.ledger, nil
}

// ── CreditRepository ──────────────────────────────────────────────────────────

func (s *memStore) CreateSchedule(schedule *entity.CreditSchedule) error {
	if _, ok := s.schedules[schedule.OrderID]; ok {
		return fmt.Errorf("la venta %s ya tiene plan de crédito", schedule.OrderID)
	}
	cp := *schedule
	s.schedules[schedule.OrderID] = &cp
	return nil
}

func (s *memStore) CreateInstallment(installment *entity.Installment) error {
	cp := *installment
	s.installments = append(s.installments, &cp)
	return nil
}

func (s *memStore) GetScheduleByOrderID(orderID string) (*entity.CreditSchedule, error) {
	sch, ok := s.schedules[orderID]
	if !ok {
		return nil, nil
	}
	cp := *sch
	return &cp, nil
}

func (s *memStore) GetInstallments(scheduleID string) ([]*entity.Installment, error) {
	var out []*entity.Installment
	for _, i := range s.installments {
		if i.ScheduleID == scheduleID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) VoidByOrderID(orderID string) error {
	sch, ok := s.schedules[orderID]
	if !ok {
		return nil
	}
	sch.Status = entity.ScheduleStatusVoided
	for _, i := range s.installments {
		if i.ScheduleID == sch.ID {
			i.Status = entity.InstallmentStatusVoided
		}
	}
	return nil
}

// ── StatusRepository ──────────────────────────────────────────────────────────

func (s *memStore) GetByCode(code string) (*entity.Status, error) {
	st, ok := s.statuses[code]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

// ── TxRunner de test ──────────────────────────────────────────────────────────

// memTxRunner ejecuta la función contra el store y restaura el snapshot si
// falla, imitando el commit/rollback del TxRunner real.
type memTxRunner struct {
	store *memStore
}

var _ sales.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) RunSales(_ context.Context, fn func(
	orderRepo repository.SalesOrderRepository,
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
	creditRepo repository.CreditRepository,
	statusRepo repository.StatusRepository,
) error) error {
	snap := r.store.clone()
	if err := fn(r.store, r.store, r.store, r.store, r.store); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
