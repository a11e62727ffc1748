package auth

import (
	"github.com/gofiber/fiber/v2"

	"asistencia_backend/internals/constants"
	helper "asistencia_backend/internals/helpers"
)

// RequireRoles corta con 403 si el rol autenticado no esta en la lista.
func RequireRoles(roles ...constants.Role) fiber.Handler {
	allowed := make(map[constants.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		ctx, err := helper.GetAuthContext(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No autenticado")
		}
		if _, ok := allowed[ctx.Rol]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "No autorizado")
		}
		return c.Next()
	}
}
