package repository

import (
	"time"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

// LedgerRepository define el puerto del kardex (diario append-only).
// Append es un insert puro: sin validación de negocio más allá de los campos
// requeridos. Los asientos nunca se actualizan ni se borran.
type LedgerRepository interface {
	Append(entry *entity.LedgerEntry) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
}
