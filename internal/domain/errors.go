package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                  = errors.New("recurso no encontrado")
	ErrInvalidInput              = errors.New("entrada inválida")
	ErrEmptyLineList             = errors.New("la orden no tiene líneas")
	ErrCreditConfigMissing       = errors.New("venta a crédito sin configuración de cuotas")
	ErrInvalidInstallmentCount   = errors.New("número de cuotas inválido")
	ErrOrderNotFound             = errors.New("orden no encontrada")
	ErrOrderAlreadyVoided        = errors.New("la orden ya está anulada")
	ErrVoidedStatusNotConfigured = errors.New("estado VOIDED no sembrado en la tabla de estados")
	ErrUnsupportedOperation      = errors.New("operación no soportada")
)

// InsufficientStockError indica que una línea pide más unidades de las
// disponibles. Lleva producto y nombre para que el boundary arme el código
// INSUFFICIENT_STOCK_<id>_<name> sin parsear mensajes.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s (%s): solicitado %d, disponible %d",
		e.ProductName, e.ProductID, e.Requested, e.Available)
}

// ProductNotFoundError indica que una línea referencia un producto inexistente.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ProductID)
}
