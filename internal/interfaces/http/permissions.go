package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

// Permission identifica una operación que un rol puede o no invocar.
type Permission string

// Operaciones del sistema.
const (
	PermRecordPurchase Permission = "purchase.record"
	PermRecordSale     Permission = "sale.record"
	PermViewInventory  Permission = "inventory.view"
	PermViewAccounting Permission = "accounting.view"
	PermManageUsers    Permission = "users.manage"
	PermManageRecords  Permission = "records.manage"
)

// capabilities es la tabla declarativa rol -> operaciones permitidas.
// Reemplaza el mapeo rol -> páginas del sistema anterior: la decisión se toma
// en un solo punto (RequirePermission), no rama por rama.
var capabilities = map[string]map[Permission]bool{
	entity.RoleAdmin: {
		PermRecordPurchase: true,
		PermRecordSale:     true,
		PermViewInventory:  true,
		PermViewAccounting: true,
		PermManageUsers:    true,
		PermManageRecords:  true,
	},
	entity.RoleStaff: {
		PermRecordPurchase: true,
		PermRecordSale:     true,
		PermViewInventory:  true,
		PermManageRecords:  true,
	},
	entity.RoleAccountant: {
		PermViewInventory:  true,
		PermViewAccounting: true,
	},
}

// Allowed indica si el rol puede invocar la operación.
func Allowed(role string, perm Permission) bool {
	return capabilities[role][perm]
}

// RequirePermission devuelve un middleware Fiber que autoriza por la tabla de
// capacidades. Debe usarse DESPUÉS de AuthMiddleware (lee el rol de c.Locals).
func RequirePermission(perm Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		if !Allowed(role, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene permiso para esta operación",
			})
		}
		return c.Next()
	}
}
