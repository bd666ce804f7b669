package repository

import "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"

// StatusRepository consulta la tabla de referencia de estados (datos sembrados).
type StatusRepository interface {
	// GetByCode devuelve nil, nil si el código no está sembrado.
	GetByCode(code string) (*entity.Status, error)
}
