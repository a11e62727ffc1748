// file: internals/route/routes.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	colegioRoute "asistencia_backend/internals/features/colegios/route"
	"asistencia_backend/internals/features/school/asistencias/live"
	asistenciaRoute "asistencia_backend/internals/features/school/asistencias/route"
	cursoRoute "asistencia_backend/internals/features/school/cursos/route"
	estudianteRoute "asistencia_backend/internals/features/school/estudiantes/route"
	periodoRoute "asistencia_backend/internals/features/school/periodos/route"
	reporteRoute "asistencia_backend/internals/features/school/reportes/route"
	authRoute "asistencia_backend/internals/features/users/auth/route"
	docenteRoute "asistencia_backend/internals/features/users/docentes/route"
	authMw "asistencia_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, hub *live.Hub) {
	startTime = time.Now()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "name": "asistencia-backend"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "OK",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up WSRoutes...")
	live.WSRoutes(app, hub)

	// ===================== PROTECTED =====================
	api := app.Group("/api", authMw.AuthMiddleware(db))

	asistenciaRoute.AsistenciaRoutes(api, db, hub)
	reporteRoute.ReporteRoutes(api, db)
	cursoRoute.CursoRoutes(api, db)
	estudianteRoute.EstudianteRoutes(api, db)
	periodoRoute.PeriodoRoutes(api, db)
	docenteRoute.DocenteRoutes(api, db)
	colegioRoute.ColegioRoutes(api, db)
}
