package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/school/periodos/controller"
	authMw "asistencia_backend/internals/middlewares/auth"
)

func PeriodoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPeriodoController(db)

	admin := authMw.RequireRoles(constants.RoleAdmin)

	periodos := api.Group("/periodos")
	periodos.Post("/", admin, ctrl.Crear)
	periodos.Get("/", ctrl.Listar)
	periodos.Put("/:id", admin, ctrl.Actualizar)
	periodos.Delete("/:id", admin, ctrl.Eliminar)
}
