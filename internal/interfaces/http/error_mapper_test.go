package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/dto"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain"
)

// respuestaDe monta una app mínima cuyo handler devuelve el error dado y
// captura el status y el cuerpo que produce el mapeador.
func respuestaDe(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/caso", func(c *fiber.Ctx) error {
		return mapDomainError(c, err)
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/caso", nil)
	resp, testErr := app.Test(req)
	require.NoError(t, testErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

// TestMapDomainError_CodigosEstables fija el contrato de error de la API: los
// clientes enrutan por Code, así que cada error de dominio debe producir
// siempre el mismo status y el mismo código.
func TestMapDomainError_CodigosEstables(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
		code   string
	}{
		{
			nombre: "lista de líneas vacía",
			err:    domain.ErrEmptyLineList,
			status: fiber.StatusBadRequest,
			code:   "EMPTY_LINE_LIST",
		},
		{
			nombre: "stock insuficiente lleva producto en el código",
			err:    &domain.InsufficientStockError{ProductID: "guitarra-1", ProductName: "Stratocaster", Requested: 5, Available: 2},
			status: fiber.StatusBadRequest,
			code:   "INSUFFICIENT_STOCK_guitarra-1_Stratocaster",
		},
		{
			nombre: "producto inexistente lleva el id en el código",
			err:    &domain.ProductNotFoundError{ProductID: "guitarra-9"},
			status: fiber.StatusNotFound,
			code:   "PRODUCT_NOT_FOUND_guitarra-9",
		},
		{
			nombre: "crédito sin configuración",
			err:    domain.ErrCreditConfigMissing,
			status: fiber.StatusBadRequest,
			code:   "CREDIT_CONFIG_MISSING",
		},
		{
			nombre: "número de cuotas inválido",
			err:    domain.ErrInvalidInstallmentCount,
			status: fiber.StatusBadRequest,
			code:   "INVALID_INSTALLMENT_COUNT",
		},
		{
			nombre: "orden no encontrada",
			err:    domain.ErrOrderNotFound,
			status: fiber.StatusNotFound,
			code:   "ORDER_NOT_FOUND",
		},
		{
			nombre: "orden ya anulada",
			err:    domain.ErrOrderAlreadyVoided,
			status: fiber.StatusConflict,
			code:   "ORDER_ALREADY_VOIDED",
		},
		{
			nombre: "estado VOIDED sin sembrar es falla del sistema",
			err:    domain.ErrVoidedStatusNotConfigured,
			status: fiber.StatusInternalServerError,
			code:   "VOIDED_STATUS_NOT_CONFIGURED",
		},
		{
			nombre: "compras no se modifican ni anulan",
			err:    domain.ErrUnsupportedOperation,
			status: fiber.StatusConflict,
			code:   "UNSUPPORTED_OPERATION",
		},
		{
			nombre: "entrada inválida",
			err:    domain.ErrInvalidInput,
			status: fiber.StatusBadRequest,
			code:   "VALIDATION",
		},
		{
			nombre: "recurso no encontrado",
			err:    domain.ErrNotFound,
			status: fiber.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			nombre: "error no mapeado cae a INTERNAL",
			err:    errors.New("se cayó la conexión"),
			status: fiber.StatusInternalServerError,
			code:   "INTERNAL",
		},
		{
			nombre: "error envuelto conserva su código",
			err:    fmt.Errorf("anulando venta: %w", domain.ErrOrderAlreadyVoided),
			status: fiber.StatusConflict,
			code:   "ORDER_ALREADY_VOIDED",
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			status, body := respuestaDe(t, caso.err)
			assert.Equal(t, caso.status, status)
			assert.Equal(t, caso.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
