package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"asistencia_backend/internals/constants"
)

// Clave en Locals donde el middleware de auth deja el contexto tipado.
const LocAuthContext = "auth_context"

// AuthContext es el contexto autenticado que viaja con cada request.
// Se construye una sola vez en el middleware a partir de los claims del JWT;
// los handlers confian en el y nunca vuelven a mirar el token.
type AuthContext struct {
	UserID     uint
	Nombre     string
	Rol        constants.Role
	SchoolID   uint
	SchoolName string
}

func (a AuthContext) IsAdmin() bool   { return a.Rol == constants.RoleAdmin }
func (a AuthContext) IsDocente() bool { return a.Rol == constants.RoleDocente }

// ResolveSchoolID aplica la politica unica de override de tenant: un admin
// puede apuntar a otro colegio pasando schoolId explicito en endpoints de
// gestion; cualquier otro rol siempre opera sobre su propio colegio.
func (a AuthContext) ResolveSchoolID(requested uint) uint {
	if a.IsAdmin() && requested != 0 {
		return requested
	}
	return a.SchoolID
}

// GetAuthContext recupera el contexto dejado por el middleware.
func GetAuthContext(c *fiber.Ctx) (AuthContext, error) {
	ctx, ok := c.Locals(LocAuthContext).(AuthContext)
	if !ok {
		return AuthContext{}, fiber.NewError(fiber.StatusUnauthorized, "No autenticado")
	}
	return ctx, nil
}

func SetAuthContext(c *fiber.Ctx, ctx AuthContext) {
	c.Locals(LocAuthContext, ctx)
}

// GetRawAccessToken devuelve el token del header "Authorization: Bearer <token>".
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
