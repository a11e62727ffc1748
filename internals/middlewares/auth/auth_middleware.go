// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"asistencia_backend/internals/configs"
	"asistencia_backend/internals/constants"
	authModel "asistencia_backend/internals/features/users/auth/model"
	helper "asistencia_backend/internals/helpers"
)

// AuthMiddleware valida el Bearer token, revisa el blacklist y deja un
// AuthContext tipado en Locals. Un token sin schoolId o con rol desconocido
// se rechaza aqui, antes de llegar a cualquier handler.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token requerido")
		}

		// Blacklist (logout previo)
		var count int64
		if err := db.Model(&authModel.TokenBlacklistModel{}).
			Where("token = ?", tokenString).
			Count(&count).Error; err != nil {
			log.Println("[ERROR] DB al revisar blacklist:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token invalido")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET vacio")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falta JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("metodo de firma inesperado")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token invalido")
		}

		ctx, err := buildAuthContext(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token invalido")
		}

		helper.SetAuthContext(c, ctx)
		return c.Next()
	}
}

func buildAuthContext(claims jwt.MapClaims) (helper.AuthContext, error) {
	userID, ok := claimUint(claims, "id")
	if !ok || userID == 0 {
		return helper.AuthContext{}, errors.New("claim id ausente")
	}
	schoolID, ok := claimUint(claims, "schoolId")
	if !ok || schoolID == 0 {
		return helper.AuthContext{}, errors.New("claim schoolId ausente")
	}
	rolStr, _ := claims["rol"].(string)
	rol := constants.Role(rolStr)
	if !rol.Valid() {
		return helper.AuthContext{}, errors.New("rol desconocido")
	}
	nombre, _ := claims["nombre"].(string)
	schoolName, _ := claims["schoolName"].(string)

	return helper.AuthContext{
		UserID:     userID,
		Nombre:     nombre,
		Rol:        rol,
		SchoolID:   schoolID,
		SchoolName: schoolName,
	}, nil
}

// Los numeros JSON llegan como float64 desde MapClaims.
func claimUint(claims jwt.MapClaims, key string) (uint, bool) {
	switch v := claims[key].(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}
