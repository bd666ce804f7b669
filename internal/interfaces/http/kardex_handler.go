package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/ledger"
)

// KardexHandler maneja las consultas y exportación del kardex (protegido).
type KardexHandler struct {
	uc *ledger.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *ledger.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// List devuelve asientos del kardex, filtrables por producto y rango de fechas.
// GET /api/kardex?product_id=&from=&to=&limit=&offset=
func (h *KardexHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas (formato YYYY-MM-DD)"})
	}
	entries, err := h.uc.List(c.Context(), c.Query("product_id"), from, to, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(entries)
}

// Export descarga el kardex del rango como archivo xlsx.
// GET /api/kardex/export?from=&to=
func (h *KardexHandler) Export(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas (formato YYYY-MM-DD)"})
	}
	file, err := h.uc.Export(c.Context(), from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="kardex.xlsx"`)
	return c.Send(file)
}

// parseDateRange lee from/to en YYYY-MM-DD; "to" es inclusivo hasta fin de día.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, err
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}
	return from, to, nil
}
