package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
)

// AdminHandler panel de administración: cuentas, vendedores, productos,
// órdenes, configuración y estadísticas.
type AdminHandler struct {
	userUC    *usecase.UserUseCase
	vendorUC  *usecase.VendorUseCase
	productUC *usecase.ProductUseCase
	orderUC   *usecase.OrderUseCase
	settingUC *usecase.SettingUseCase
	statsUC   *usecase.StatsUseCase
}

// NewAdminHandler construye el handler del panel admin.
func NewAdminHandler(
	userUC *usecase.UserUseCase,
	vendorUC *usecase.VendorUseCase,
	productUC *usecase.ProductUseCase,
	orderUC *usecase.OrderUseCase,
	settingUC *usecase.SettingUseCase,
	statsUC *usecase.StatsUseCase,
) *AdminHandler {
	return &AdminHandler{
		userUC:    userUC,
		vendorUC:  vendorUC,
		productUC: productUC,
		orderUC:   orderUC,
		settingUC: settingUC,
		statsUC:   statsUC,
	}
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.userUC.List(page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// SetUserStatus godoc
// @Summary      Activar/desactivar una cuenta
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "status: active|inactive"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/status [patch]
func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.userUC.SetStatus(id, in.Status)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// ListVendors godoc
// @Summary      Listar perfiles de vendedor
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.VendorListResponse
// @Router       /api/admin/vendors [get]
func (h *AdminHandler) ListVendors(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.vendorUC.List(page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// SetVendorApproval godoc
// @Summary      Aprobar o revocar un vendedor
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vendedor (user_id)"
// @Param        body  body  dto.SetVendorApprovalRequest  true  "approved"
// @Success      200   {object}  dto.VendorProfileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/vendors/{id}/approval [patch]
func (h *AdminHandler) SetVendorApproval(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SetVendorApprovalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.vendorUC.SetApproval(id, in.Approved)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar cualquier producto
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.productUC.AdminDelete(id); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListOrders godoc
// @Summary      Listar todas las órdenes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.orderUC.ListAll(page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetSettings godoc
// @Summary      Configuración de plataforma
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/admin/settings [get]
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.settingUC.All()
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Actualizar configuración (upsert masivo)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "mapa clave -> valor"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/settings [patch]
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.settingUC.Update(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de plataforma
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (default: hace 30 días)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Param        top_n       query  int     false  "Productos destacados"  default(5)
// @Success      200  {object}  dto.PlatformStatsResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	in := dto.StatsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		TopN:      c.QueryInt("top_n", 5),
	}
	out, err := h.statsUC.Platform(c.Context(), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
