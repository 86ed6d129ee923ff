package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
)

// VendorHandler panel del vendedor: perfil, productos propios y órdenes recibidas.
type VendorHandler struct {
	vendorUC  *usecase.VendorUseCase
	productUC *usecase.ProductUseCase
	orderUC   *usecase.OrderUseCase
}

// NewVendorHandler construye el handler del vendedor.
func NewVendorHandler(vendorUC *usecase.VendorUseCase, productUC *usecase.ProductUseCase, orderUC *usecase.OrderUseCase) *VendorHandler {
	return &VendorHandler{vendorUC: vendorUC, productUC: productUC, orderUC: orderUC}
}

// GetProfile godoc
// @Summary      Mi perfil de vendedor
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendorProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendor/profile [get]
func (h *VendorHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.vendorUC.GetProfile(GetUserID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar mi perfil de vendedor
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateVendorProfileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.VendorProfileResponse
// @Router       /api/vendor/profile [put]
func (h *VendorHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateVendorProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.vendorUC.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Mis productos (incluye inactivos)
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/vendor/products [get]
func (h *VendorHandler) ListProducts(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.productUC.ListByVendor(GetUserID(c), page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateProduct godoc
// @Summary      Publicar producto (requiere vendedor aprobado)
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      403   {object}  dto.ErrorResponse  "vendedor no aprobado"
// @Router       /api/vendor/products [post]
func (h *VendorHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.productUC.CreateForVendor(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduct godoc
// @Summary      Actualizar un producto propio
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendor/products/{id} [put]
func (h *VendorHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.productUC.UpdateForVendor(GetUserID(c), id, in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar un producto propio
// @Tags         vendor
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendor/products/{id} [delete]
func (h *VendorHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.productUC.DeleteForVendor(GetUserID(c), id); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListOrders godoc
// @Summary      Órdenes recibidas por mi tienda
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/vendor/orders [get]
func (h *VendorHandler) ListOrders(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.orderUC.ListByVendor(GetUserID(c), page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
