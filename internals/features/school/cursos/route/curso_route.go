package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/school/cursos/controller"
	authMw "asistencia_backend/internals/middlewares/auth"
)

func CursoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCursoController(db)

	gestion := authMw.RequireRoles(constants.RoleAdmin, constants.RoleDocente)

	cursos := api.Group("/cursos")
	cursos.Post("/", gestion, ctrl.Crear)
	cursos.Get("/", ctrl.Listar)
	cursos.Put("/:id", gestion, ctrl.Actualizar)
	cursos.Delete("/:id", gestion, ctrl.Eliminar)

	api.Post("/curso-docentes/seed", authMw.RequireRoles(constants.RoleAdmin), ctrl.SeedCursoDocente)
}
