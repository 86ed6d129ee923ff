package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/softshop-api/internal/application/checkout"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
)

// OrderHandler checkout y ciclo de vida de órdenes del comprador.
type OrderHandler struct {
	checkoutUC *checkout.UseCase
	orderUC    *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(checkoutUC *checkout.UseCase, orderUC *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{checkoutUC: checkoutUC, orderUC: orderUC}
}

// Checkout godoc
// @Summary      Convertir el carrito en órdenes (una por vendedor)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      409  {object}  dto.ErrorResponse  "stock insuficiente o producto no disponible"
// @Failure      422  {object}  dto.ErrorResponse  "carrito vacío"
// @Router       /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.checkoutUC.Checkout(c.Context(), GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Mis órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.orderUC.ListByUser(GetUserID(c), page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una orden (comprador, vendedor de la orden o admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.orderUC.GetForRequester(id, GetUserID(c), GetRole(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar una orden pending (restituye stock)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse  "la orden ya no está pending"
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.orderUC.Cancel(c.Context(), id, GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// Rate godoc
// @Summary      Calificar los productos de una orden fulfilled
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RateOrderRequest  true  "order_id, score 1..5 y comentario opcional"
// @Success      201   {array}  dto.RatingResponse
// @Failure      422   {object}  dto.ErrorResponse  "orden no calificable"
// @Router       /api/orders/rate [post]
func (h *OrderHandler) Rate(c *fiber.Ctx) error {
	var in dto.RateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "order_id es requerido"})
	}
	out, err := h.orderUC.Rate(in.OrderID, GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de una orden fulfilled
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse  "la orden aún no fue entregada"
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.orderUC.Receipt(id, GetUserID(c), GetRole(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orden-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
