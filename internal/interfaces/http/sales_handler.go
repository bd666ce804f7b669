package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas (protegido).
type SalesHandler struct {
	createUC  *sales.CreateOrderUseCase
	cancelUC  *sales.CancelOrderUseCase
	getUC     *sales.GetOrderUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(
	createUC *sales.CreateOrderUseCase,
	cancelUC *sales.CancelOrderUseCase,
	getUC *sales.GetOrderUseCase,
	receiptUC *sales.ReceiptUseCase,
) *SalesHandler {
	return &SalesHandler{
		createUC:  createUC,
		cancelUC:  cancelUC,
		getUC:     getUC,
		receiptUC: receiptUC,
	}
}

// Create crea una venta, descuenta stock y asienta el kardex.
// POST /api/sales
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.createUC.Execute(c.Context(), userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID obtiene una venta con líneas y plan de crédito.
// GET /api/sales/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	order, err := h.getUC.Execute(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(order)
}

// Cancel anula una venta: restituye stock, compensa el kardex y anula el crédito.
// POST /api/sales/:id/cancel
func (h *SalesHandler) Cancel(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	order, err := h.cancelUC.Execute(c.Context(), userID, id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(order)
}

// Receipt genera y descarga el comprobante PDF de la venta.
// GET /api/sales/:id/receipt
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, err := h.receiptUC.Execute(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="venta-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
