package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
)

// mapDomainError traduce errores de dominio a respuestas HTTP con código
// estable. Los clientes enrutan por Code, nunca por Message.
func mapDomainError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    fmt.Sprintf("INSUFFICIENT_STOCK_%s_%s", stockErr.ProductID, stockErr.ProductName),
			Message: stockErr.Error(),
		})
	}
	var notFoundErr *domain.ProductNotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    fmt.Sprintf("PRODUCT_NOT_FOUND_%s", notFoundErr.ProductID),
			Message: notFoundErr.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrEmptyLineList):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_LINE_LIST", Message: "la orden necesita al menos una línea"})
	case errors.Is(err, domain.ErrCreditConfigMissing):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CREDIT_CONFIG_MISSING", Message: "venta a crédito sin configuración de cuotas válida"})
	case errors.Is(err, domain.ErrInvalidInstallmentCount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INSTALLMENT_COUNT", Message: "el número de cuotas debe ser mayor que cero"})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "orden no encontrada"})
	case errors.Is(err, domain.ErrOrderAlreadyVoided):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_ALREADY_VOIDED", Message: "la orden ya está anulada"})
	case errors.Is(err, domain.ErrVoidedStatusNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "VOIDED_STATUS_NOT_CONFIGURED", Message: "estado VOIDED no configurado en el sistema"})
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_OPERATION", Message: "las compras no se modifican ni se anulan"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
