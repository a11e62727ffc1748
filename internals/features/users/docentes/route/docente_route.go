package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/users/docentes/controller"
	authMw "asistencia_backend/internals/middlewares/auth"
)

func DocenteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDocenteController(db)

	admin := authMw.RequireRoles(constants.RoleAdmin)

	docentes := api.Group("/docentes")
	docentes.Get("/", ctrl.Listar)
	docentes.Post("/", admin, ctrl.Crear)
	docentes.Put("/:id", admin, ctrl.Actualizar)
	docentes.Delete("/:id", admin, ctrl.Eliminar)
}
