package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/ledger"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

// fakeLedgerRepo registra los argumentos de la última llamada para verificar
// el despacho del caso de uso.
type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry

	lastProductID string
	lastLimit     int
	lastOffset    int
	listCalls     int
	byProduct     bool
}

func (f *fakeLedgerRepo) Append(entry *entity.LedgerEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLedgerRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	f.byProduct = true
	f.lastProductID = productID
	f.lastLimit = limit
	f.lastOffset = offset
	return f.entries, nil
}

func (f *fakeLedgerRepo) List(from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	f.byProduct = false
	f.lastLimit = limit
	f.lastOffset = offset
	f.listCalls++
	lo := offset
	if lo > len(f.entries) {
		lo = len(f.entries)
	}
	hi := lo + limit
	if hi > len(f.entries) {
		hi = len(f.entries)
	}
	return f.entries[lo:hi], nil
}

type fakeExporter struct {
	exported []*entity.LedgerEntry
}

func (f *fakeExporter) Export(entries []*entity.LedgerEntry) ([]byte, error) {
	f.exported = entries
	return []byte("xlsx"), nil
}

func asiento(productID string) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:          "asiento-1",
		ProductID:   productID,
		Direction:   entity.DirectionOutbound,
		Origin:      entity.OriginSale,
		ReferenceID: "venta-1",
		Quantity:    2,
		UnitCost:    decimal.RequireFromString("500.00"),
		Status:      entity.OrderStatusActive,
		CreatedAt:   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestKardexList_MapeaAsientos(t *testing.T) {
	repo := &fakeLedgerRepo{entries: []*entity.LedgerEntry{asiento("guitarra-1")}}
	uc := ledger.NewKardexUseCase(repo, &fakeExporter{})

	out, err := uc.List(context.Background(), "", nil, nil, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.False(t, repo.byProduct, "sin product_id debe listar todo el kardex")
	assert.Equal(t, 20, repo.lastLimit, "debe aplicar la paginación por defecto")
	assert.Equal(t, "guitarra-1", out[0].ProductID)
	assert.Equal(t, entity.DirectionOutbound, out[0].Direction)
	assert.Equal(t, "2025-06-01T10:30:00Z", out[0].CreatedAt)
}

func TestKardexList_FiltraPorProducto(t *testing.T) {
	repo := &fakeLedgerRepo{}
	uc := ledger.NewKardexUseCase(repo, &fakeExporter{})

	_, err := uc.List(context.Background(), "guitarra-1", nil, nil, dto.PageRequest{Limit: 5, Offset: 10})
	require.NoError(t, err)

	assert.True(t, repo.byProduct)
	assert.Equal(t, "guitarra-1", repo.lastProductID)
	assert.Equal(t, 5, repo.lastLimit)
	assert.Equal(t, 10, repo.lastOffset)
}

func TestKardexExport_DelegaAlExporter(t *testing.T) {
	repo := &fakeLedgerRepo{entries: []*entity.LedgerEntry{asiento("guitarra-1")}}
	exporter := &fakeExporter{}
	uc := ledger.NewKardexUseCase(repo, exporter)

	out, err := uc.Export(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), out)
	require.Len(t, exporter.exported, 1)
	assert.Equal(t, 10000, repo.lastLimit, "lee en lotes de 10000")
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 1, repo.listCalls, "un rango chico cabe en una sola lectura")
}

// TestKardexExport_RecorreTodosLosLotes verifica que el export no trunca: un
// rango con más asientos que el tamaño de lote se lee en varias pasadas y el
// archivo lleva todos.
func TestKardexExport_RecorreTodosLosLotes(t *testing.T) {
	repo := &fakeLedgerRepo{}
	for i := 0; i < 10001; i++ {
		repo.entries = append(repo.entries, asiento("guitarra-1"))
	}
	exporter := &fakeExporter{}
	uc := ledger.NewKardexUseCase(repo, exporter)

	_, err := uc.Export(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
	assert.Equal(t, 10000, repo.lastOffset, "la segunda lectura continúa donde terminó la primera")
	assert.Len(t, exporter.exported, 10001, "ningún asiento del rango queda fuera del archivo")
}
