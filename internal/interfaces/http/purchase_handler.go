package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/purchases"
)

// PurchaseHandler maneja las peticiones HTTP de compras (protegido).
type PurchaseHandler struct {
	createUC *purchases.CreateOrderUseCase
	getUC    *purchases.GetOrderUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(createUC *purchases.CreateOrderUseCase, getUC *purchases.GetOrderUseCase) *PurchaseHandler {
	return &PurchaseHandler{createUC: createUC, getUC: getUC}
}

// Create registra una compra a proveedor, suma stock y asienta el kardex.
// POST /api/purchases
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.createUC.Execute(c.Context(), userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID obtiene una compra con sus líneas.
// GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
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

// Modify rechaza la modificación: las compras son inmutables.
// PUT /api/purchases/:id
func (h *PurchaseHandler) Modify(c *fiber.Ctx) error {
	return mapDomainError(c, h.createUC.Modify(c.Context(), c.Params("id")))
}

// Cancel rechaza la anulación: el ajuste correcto es un movimiento de inventario.
// DELETE /api/purchases/:id
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	return mapDomainError(c, h.createUC.Cancel(c.Context(), c.Params("id")))
}
