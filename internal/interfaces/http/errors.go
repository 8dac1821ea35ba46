package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cortes-stock/internal/application/dto"
	"github.com/tu-usuario/cortes-stock/internal/domain"
)

// respondDomainError mapea errores de dominio a respuestas HTTP. Los errores de
// regla de negocio van con contexto suficiente para que el caller reaccione
// (p.ej. disponible vs. requerido); nunca se tragan en silencio.
func respondDomainError(c *fiber.Ctx, err error) error {
	var dup *domain.DuplicateStockError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_STOCK", Message: dup.Error()})
	}
	var neg *domain.NegativeResultError
	if errors.As(err, &neg) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_RESULT", Message: neg.Error()})
	}
	var insuf *domain.InsufficientStockError
	if errors.As(err, &insuf) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insuf.Error()})
	}
	var state *domain.InvalidStateError
	if errors.As(err, &state) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: state.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrZeroDelta):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrStockDeleted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_DELETED", Message: err.Error()})
	}
	// Fallo de persistencia u otro error inesperado: transitorio, el caller
	// puede reintentar.
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
