package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registra los middlewares base en orden
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
