package controller

import (
	"errors"

	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/features/school/asistencias/service"
	helper "asistencia_backend/internals/helpers"
)

type ReporteController struct {
	Service *service.AsistenciaService
}

func NewReporteController(db *gorm.DB) *ReporteController {
	return &ReporteController{Service: service.NewAsistenciaService(db, nil)}
}

type exportQuery struct {
	CursoID   uint `query:"cursoId"`
	PeriodoID uint `query:"periodoId"`
}

// FilaCSV es el layout de columnas del export (presente como SI/NO).
type FilaCSV struct {
	Fecha        string `csv:"fecha"`
	CursoID      uint   `csv:"cursoId"`
	PeriodoID    uint   `csv:"periodoId"`
	EstudianteID uint   `csv:"estudianteId"`
	Estudiante   string `csv:"estudiante"`
	Presente     string `csv:"presente"`
}

/* ===================== EXPORT CSV ===================== */
// GET /api/reportes/asistencias.csv?cursoId=&periodoId=
func (ctrl *ReporteController) ExportarCSV(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var q exportQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query invalida")
	}
	if q.CursoID == 0 || q.PeriodoID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "cursoId y periodoId son requeridos")
	}

	registros, err := ctrl.Service.ListarRegistros(c.UserContext(), auth.SchoolID, q.CursoID, q.PeriodoID)
	if err != nil {
		if errors.Is(err, service.ErrCursoNoEncontrado) || errors.Is(err, service.ErrPeriodoNoEncontrado) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return err
	}

	filas := make([]FilaCSV, 0, len(registros))
	for _, r := range registros {
		presente := "NO"
		if r.Presente {
			presente = "SI"
		}
		filas = append(filas, FilaCSV{
			Fecha:        r.Fecha,
			CursoID:      r.CursoID,
			PeriodoID:    r.PeriodoID,
			EstudianteID: r.EstudianteID,
			Estudiante:   r.Estudiante,
			Presente:     presente,
		})
	}

	csv, err := gocsv.MarshalString(&filas)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="asistencias.csv"`)
	return c.SendString(csv)
}
