package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/features/school/reportes/controller"
)

func ReporteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReporteController(db)

	reportes := api.Group("/reportes")
	reportes.Get("/asistencias.csv", ctrl.ExportarCSV)
}
