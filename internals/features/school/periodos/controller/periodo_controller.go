package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/features/school/periodos/dto"
	"asistencia_backend/internals/features/school/periodos/model"
	helper "asistencia_backend/internals/helpers"
)

type PeriodoController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPeriodoController(db *gorm.DB) *PeriodoController {
	return &PeriodoController{DB: db, validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/periodos
func (ctrl *PeriodoController) Crear(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req dto.PeriodoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	periodo := model.PeriodoModel{
		Nombre:      req.Nombre,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		SchoolID:    auth.ResolveSchoolID(req.SchoolID),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&periodo).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(periodo)
}

/* ===================== LIST ===================== */
// GET /api/periodos?schoolId=
func (ctrl *PeriodoController) Listar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	schoolID := auth.ResolveSchoolID(uint(c.QueryInt("schoolId")))
	var periodos []model.PeriodoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", schoolID).
		Order("fecha_inicio").
		Find(&periodos).Error; err != nil {
		return err
	}
	return c.JSON(periodos)
}

/* ===================== UPDATE ===================== */
// PUT /api/periodos/:id
func (ctrl *PeriodoController) Actualizar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	periodo, err := ctrl.buscarPeriodo(c, auth.SchoolID)
	if err != nil {
		return err
	}

	var req dto.PeriodoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Nombre != nil {
		periodo.Nombre = *req.Nombre
	}
	if req.FechaInicio != nil {
		periodo.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		periodo.FechaFin = *req.FechaFin
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(periodo).Error; err != nil {
		return err
	}
	return c.JSON(periodo)
}

/* ===================== DELETE ===================== */
// DELETE /api/periodos/:id
func (ctrl *PeriodoController) Eliminar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	periodo, err := ctrl.buscarPeriodo(c, auth.SchoolID)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(periodo).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (ctrl *PeriodoController) buscarPeriodo(c *fiber.Ctx, schoolID uint) (*model.PeriodoModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalido")
	}
	var periodo model.PeriodoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		First(&periodo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
		}
		return nil, err
	}
	return &periodo, nil
}
