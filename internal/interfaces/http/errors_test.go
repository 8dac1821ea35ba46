package http

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cortes-stock/internal/application/dto"
	"github.com/tu-usuario/cortes-stock/internal/domain"
)

// respond lanza el error por un handler real y devuelve status + cuerpo decodificado.
func respond(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondDomainError(c, err)
	})
	req := httptest.NewRequest(nethttp.MethodGet, "/boom", nil)
	resp, terr := app.Test(req, -1)
	require.NoError(t, terr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Los errores de regla de negocio son conflictos (409) con código propio.
func TestRespondDomainError_ErroresDeNegocio(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{&domain.DuplicateStockError{OwnerKind: "subproduct", OwnerID: "s1"}, "DUPLICATE_STOCK"},
		{&domain.NegativeResultError{StockID: "st1", Current: decimal.NewFromInt(3), Delta: decimal.NewFromInt(-5)}, "NEGATIVE_RESULT"},
		{&domain.InsufficientStockError{SubproductID: "s1", Available: decimal.NewFromInt(10), Required: decimal.NewFromInt(15)}, "INSUFFICIENT_STOCK"},
		{&domain.InvalidStateError{OrderID: "o1", Status: "pending", Action: "complete"}, "INVALID_STATE"},
		{domain.ErrStockDeleted, "STOCK_DELETED"},
	}
	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, nethttp.StatusConflict, status, tc.code)
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

// El mensaje de insuficiencia debe nombrar disponible y requerido.
func TestRespondDomainError_InsuficienteConDetalle(t *testing.T) {
	_, body := respond(t, &domain.InsufficientStockError{
		SubproductID: "s1",
		Available:    decimal.NewFromInt(10),
		Required:     decimal.NewFromInt(15),
	})
	assert.Contains(t, body.Message, "10")
	assert.Contains(t, body.Message, "15")
}

func TestRespondDomainError_Sentinelas(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, nethttp.StatusBadRequest, "VALIDATION"},
		{domain.ErrZeroDelta, nethttp.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, nethttp.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUserNotFound, nethttp.StatusNotFound, "NOT_FOUND"},
		{domain.ErrForbidden, nethttp.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, body.Code)
	}
}

// Los errores envueltos conservan su mapeo gracias a errors.Is/As.
func TestRespondDomainError_ErroresEnvueltos(t *testing.T) {
	status, body := respond(t, fmt.Errorf("al ajustar stock: %w", domain.ErrNotFound))
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)

	status, body = respond(t, fmt.Errorf("al completar: %w", &domain.InvalidStateError{
		OrderID: "o1", Status: "completed", Action: "cancel",
	}))
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "INVALID_STATE", body.Code)
}

// Cualquier otro error es un 500 genérico.
func TestRespondDomainError_Inesperado(t *testing.T) {
	status, body := respond(t, fmt.Errorf("conexión perdida"))
	assert.Equal(t, nethttp.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
}
