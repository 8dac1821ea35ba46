package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cortes-stock/internal/application/cutting"
	"github.com/tu-usuario/cortes-stock/internal/application/dto"
)

// CuttingOrderHandler maneja las peticiones HTTP del workflow de órdenes de corte (protegido).
type CuttingOrderHandler struct {
	uc *cutting.UseCase
}

// NewCuttingOrderHandler construye el handler.
func NewCuttingOrderHandler(uc *cutting.UseCase) *CuttingOrderHandler {
	return &CuttingOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de corte (pending, con items)
// @Tags         cutting-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCuttingOrderRequest  true  "customer, items, assigned_to opcional"
// @Success      201   {object}  dto.CuttingOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cutting-orders [post]
func (h *CuttingOrderHandler) Create(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateCuttingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := cutting.CreateInput{
		Customer:   in.Customer,
		Actor:      actor,
		AssignedTo: in.AssignedTo,
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, cutting.ItemInput{
			SubproductID: item.SubproductID,
			Quantity:     item.Quantity,
		})
	}
	order, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCuttingOrderResponse(order))
}

// Assign godoc
// @Summary      Asignar operario a una orden pending
// @Tags         cutting-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.AssignCuttingOrderRequest  true  "operator_id"
// @Success      200   {object}  dto.CuttingOrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cutting-orders/{id}/assign [post]
func (h *CuttingOrderHandler) Assign(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AssignCuttingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Assign(c.Context(), c.Params("id"), in.OperatorID, actor)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCuttingOrderResponse(order))
}

// Start godoc
// @Summary      Pasar la orden a in_process
// @Tags         cutting-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.CuttingOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cutting-orders/{id}/start [post]
func (h *CuttingOrderHandler) Start(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	order, err := h.uc.Start(c.Context(), c.Params("id"), actor)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCuttingOrderResponse(order))
}

// Complete godoc
// @Summary      Completar la orden: despacha todo el stock o nada
// @Tags         cutting-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.CuttingOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cutting-orders/{id}/complete [post]
func (h *CuttingOrderHandler) Complete(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	order, err := h.uc.Complete(c.Context(), c.Params("id"), actor)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCuttingOrderResponse(order))
}

// Cancel godoc
// @Summary      Cancelar la orden (sin efecto sobre stock)
// @Tags         cutting-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.CuttingOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cutting-orders/{id}/cancel [post]
func (h *CuttingOrderHandler) Cancel(c *fiber.Ctx) error {
	actor := GetUserID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	order, err := h.uc.Cancel(c.Context(), c.Params("id"), actor)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCuttingOrderResponse(order))
}

// GetByID godoc
// @Summary      Consultar una orden con sus items
// @Tags         cutting-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.CuttingOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cutting-orders/{id} [get]
func (h *CuttingOrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToCuttingOrderResponse(order))
}

// List godoc
// @Summary      Listar órdenes por estado
// @Tags         cutting-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  true  "pending | in_process | completed | cancelled"
// @Success      200  {array}  dto.CuttingOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cutting-orders [get]
func (h *CuttingOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	orders, err := h.uc.ListByStatus(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]*dto.CuttingOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToCuttingOrderResponse(o))
	}
	return c.JSON(out)
}
