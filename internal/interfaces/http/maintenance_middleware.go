package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
)

// maintenanceChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *usecase.SettingUseCase; el uso de interfaz evita el import circular.
type maintenanceChecker interface {
	MaintenanceMode() bool
}

// MaintenanceGate devuelve un middleware Fiber que bloquea las escrituras de
// usuarios no-admin cuando maintenance_mode está activo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole). Las lecturas siguen funcionando para que
// el catálogo no desaparezca durante una ventana de mantenimiento.
func MaintenanceGate(checker maintenanceChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return c.Next()
		}
		if GetRole(c) == entity.RoleAdmin {
			return c.Next()
		}
		if checker.MaintenanceMode() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MAINTENANCE",
				Message: "plataforma en mantenimiento, intente más tarde",
			})
		}
		return c.Next()
	}
}
