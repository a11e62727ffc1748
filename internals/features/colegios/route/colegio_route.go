package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/colegios/controller"
	authMw "asistencia_backend/internals/middlewares/auth"
)

func ColegioRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewColegioController(db)

	colegios := api.Group("/colegios", authMw.RequireRoles(constants.RoleAdmin))
	colegios.Get("/", ctrl.Listar)
	colegios.Post("/", ctrl.Crear)
	colegios.Put("/:id", ctrl.Actualizar)
	colegios.Delete("/:id", ctrl.Eliminar)
}
