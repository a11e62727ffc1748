package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/memory/v2"

	"asistencia_backend/internals/configs"
)

// Los contadores viven en un storage inyectado y con duenio explicito:
// se vacia al reiniciar el proceso y cada entrada expira con su ventana.
func newLimiterStorage() fiber.Storage {
	return memory.New(memory.Config{GCInterval: 30 * time.Second})
}

// Limiter global: todos los endpoints
func GlobalRateLimiter() fiber.Handler {
	max := 500
	if v, err := strconv.Atoi(configs.GetEnv("RATE_LIMIT_MAX", "")); err == nil && v > 0 {
		max = v
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 15 * time.Minute,
		Storage:    newLimiterStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Demasiadas solicitudes, intenta mas tarde",
			})
		},
	})
}

// Limiter de login (mas estricto)
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 15 * time.Minute,
		Storage:    newLimiterStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Demasiados intentos, intenta mas tarde",
			})
		},
	})
}
