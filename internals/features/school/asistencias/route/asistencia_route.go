package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/school/asistencias/controller"
	"asistencia_backend/internals/features/school/asistencias/service"
	authMw "asistencia_backend/internals/middlewares/auth"
)

func AsistenciaRoutes(api fiber.Router, db *gorm.DB, pub service.Publisher) {
	ctrl := controller.NewAsistenciaController(db, pub)

	asistencias := api.Group("/asistencias")
	asistencias.Post("/qr", authMw.RequireRoles(constants.RoleDocente, constants.RoleAdmin), ctrl.RegistrarDesdeQR)
	asistencias.Get("/resumen", ctrl.ResumenCurso)
}
