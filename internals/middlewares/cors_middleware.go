package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"asistencia_backend/internals/configs"
)

// CorsMiddleware con origenes tomados de CORS_ORIGINS (separados por coma).
// Sin configuracion: origen abierto sin credenciales.
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.GetEnv("CORS_ORIGINS"))
	if origins == "" {
		return cors.New(cors.Config{
			AllowOrigins:     "*",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowCredentials: false,
		})
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
