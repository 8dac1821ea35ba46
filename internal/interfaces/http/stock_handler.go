package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cortes-stock/internal/application/dto"
	"github.com/tu-usuario/cortes-stock/internal/application/stock"
	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del núcleo de stock (protegido).
type StockHandler struct {
	svc *stock.Service
}

// NewStockHandler construye el handler.
func NewStockHandler(svc *stock.Service) *StockHandler {
	return &StockHandler{svc: svc}
}

// Initialize godoc
// @Summary      Inicializar stock de un dueño (producto o subproducto)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InitializeStockRequest  true  "owner_kind, owner_id, initial_quantity, location, reason"
// @Success      201   {object}  dto.StockRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Initialize(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.InitializeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.svc.InitializeStock(c.Context(), stock.InitializeInput{
		Owner:           entity.OwnerRef{Kind: in.OwnerKind, ID: in.OwnerID},
		Actor:           actor,
		InitialQuantity: in.InitialQuantity,
		Location:        in.Location,
		Reason:          in.Reason,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStockRecordResponse(record))
}

// Adjust godoc
// @Summary      Ajustar stock manualmente (delta con signo, nunca cero)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro de stock"
// @Param        body  body  dto.AdjustStockRequest  true  "delta, reason"
// @Success      200   {object}  dto.StockRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.svc.AdjustStock(c.Context(), c.Params("id"), actor, in.Delta, in.Reason)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToStockRecordResponse(record))
}

// GetByID godoc
// @Summary      Consultar un registro de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro de stock"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	record, err := h.svc.GetStock(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToStockRecordResponse(record))
}

// List godoc
// @Summary      Listar registros de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockRecordResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	records, err := h.svc.ListStock(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]*dto.StockRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ToStockRecordResponse(r))
	}
	return c.JSON(out)
}

// ListEvents godoc
// @Summary      Libro de stock de un registro (más recientes primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro de stock"
// @Success      200  {array}  dto.StockEventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/events [get]
func (h *StockHandler) ListEvents(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	events, err := h.svc.ListStockEvents(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToStockEventResponses(events))
}

// Reconcile godoc
// @Summary      Conciliar la cantidad de un registro contra su libro
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro de stock"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/reconcile [get]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	report, err := h.svc.ReconcileStock(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToReconcileResponse(report))
}

// Delete godoc
// @Summary      Borrado lógico de un registro de stock (terminal)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro de stock"
// @Success      200  {object}  dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	record, err := h.svc.SoftDeleteStock(c.Context(), c.Params("id"), actor)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToStockRecordResponse(record))
}
