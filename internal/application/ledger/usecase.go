package ledger

import (
	"context"
	"time"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/repository"
)

// Exporter serializa asientos del kardex a un archivo descargable (xlsx).
type Exporter interface {
	Export(entries []*entity.LedgerEntry) ([]byte, error)
}

// KardexUseCase consulta y exporta el kardex (solo lectura, repos sobre el pool).
type KardexUseCase struct {
	ledgerRepo repository.LedgerRepository
	exporter   Exporter
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(ledgerRepo repository.LedgerRepository, exporter Exporter) *KardexUseCase {
	return &KardexUseCase{ledgerRepo: ledgerRepo, exporter: exporter}
}

// List devuelve los asientos, opcionalmente filtrados por producto y rango de fechas.
func (uc *KardexUseCase) List(ctx context.Context, productID string, from, to *time.Time, page dto.PageRequest) ([]dto.KardexEntryResponse, error) {
	page.DefaultPage()

	var (
		entries []*entity.LedgerEntry
		err     error
	)
	if productID != "" {
		entries, err = uc.ledgerRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	} else {
		entries, err = uc.ledgerRepo.List(from, to, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.KardexEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.KardexEntryResponse{
			ID:          e.ID,
			ProductID:   e.ProductID,
			Direction:   e.Direction,
			Origin:      e.Origin,
			ReferenceID: e.ReferenceID,
			Quantity:    e.Quantity,
			UnitCost:    e.UnitCost,
			Comment:     e.Comment,
			Status:      e.Status,
			CreatedBy:   e.CreatedBy,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Export genera el archivo xlsx con el kardex completo del rango pedido en un
// solo archivo, leyendo por lotes hasta agotar los asientos.
func (uc *KardexUseCase) Export(ctx context.Context, from, to *time.Time) ([]byte, error) {
	const exportBatch = 10000 // filas por lectura

	var entries []*entity.LedgerEntry
	for offset := 0; ; offset += exportBatch {
		batch, err := uc.ledgerRepo.List(from, to, exportBatch, offset)
		if err != nil {
			return nil, err
		}
		entries = append(entries, batch...)
		if len(batch) < exportBatch {
			break
		}
	}
	return uc.exporter.Export(entries)
}
