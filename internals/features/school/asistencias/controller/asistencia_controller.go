package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/features/school/asistencias/dto"
	"asistencia_backend/internals/features/school/asistencias/service"
	helper "asistencia_backend/internals/helpers"
)

type AsistenciaController struct {
	Service  *service.AsistenciaService
	validate *validator.Validate
}

func NewAsistenciaController(db *gorm.DB, pub service.Publisher) *AsistenciaController {
	return &AsistenciaController{
		Service:  service.NewAsistenciaService(db, pub),
		validate: validator.New(),
	}
}

/* ===================== REGISTRO ===================== */
// POST /api/asistencias/qr
func (ctrl *AsistenciaController) RegistrarDesdeQR(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req dto.RegistroQRRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}

	// La asistencia siempre se registra en el colegio del token.
	registro, err := ctrl.Service.RegistrarDesdeQR(c.UserContext(), auth.SchoolID, service.RegistroQR{
		QR:       req.QR,
		CursoID:  req.CursoID,
		Fecha:    req.Fecha,
		Presente: req.Presente,
	})
	if err != nil {
		return mapearErrorAsistencia(c, err)
	}

	return helper.JsonCreated(c, "Asistencia registrada", "registro", registro)
}

/* ===================== RESUMEN ===================== */
// GET /api/asistencias/resumen?cursoId=&periodoId=&totalClases=
func (ctrl *AsistenciaController) ResumenCurso(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var q dto.ResumenQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query invalida")
	}
	if q.CursoID == 0 || q.PeriodoID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "cursoId y periodoId son requeridos")
	}
	if err := ctrl.validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	resumen, err := ctrl.Service.ResumenCurso(c.UserContext(), auth.SchoolID, q.CursoID, q.PeriodoID, q.TotalClases)
	if err != nil {
		return mapearErrorAsistencia(c, err)
	}
	return c.JSON(resumen)
}

// mapearErrorAsistencia traduce la taxonomia del service a HTTP. Los errores
// no enumerados suben al handler generico de fiber.
func mapearErrorAsistencia(c *fiber.Ctx, err error) error {
	var faltantes *service.CamposFaltantesError
	switch {
	case errors.As(err, &faltantes):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEstudianteNoEncontrado),
		errors.Is(err, service.ErrCursoNoEncontrado),
		errors.Is(err, service.ErrPeriodoNoEncontrado):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSinPeriodoActivo),
		errors.Is(err, service.ErrCursoNoCoincide),
		errors.Is(err, service.ErrFechaInvalida):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRegistroDuplicado):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
