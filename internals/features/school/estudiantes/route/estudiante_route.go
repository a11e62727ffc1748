package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/school/estudiantes/controller"
	authMw "asistencia_backend/internals/middlewares/auth"
)

func EstudianteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEstudianteController(db)

	estudiantes := api.Group("/estudiantes")
	estudiantes.Post("/", authMw.RequireRoles(constants.RoleAdmin), ctrl.Crear)
	estudiantes.Get("/", ctrl.Listar)
}
