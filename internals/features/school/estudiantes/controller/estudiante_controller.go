package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cursoModel "asistencia_backend/internals/features/school/cursos/model"
	"asistencia_backend/internals/features/school/estudiantes/dto"
	"asistencia_backend/internals/features/school/estudiantes/model"
	helper "asistencia_backend/internals/helpers"
)

type EstudianteController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEstudianteController(db *gorm.DB) *EstudianteController {
	return &EstudianteController{DB: db, validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/estudiantes — el curso debe pertenecer al colegio del token.
func (ctrl *EstudianteController) Crear(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req dto.EstudianteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curso cursoModel.CursoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", req.CursoID, auth.SchoolID).
		First(&curso).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
		}
		return err
	}

	qr := req.QR
	if qr == "" {
		qr = uuid.NewString()
	}

	estudiante := model.EstudianteModel{
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		QR:        qr,
		CursoID:   req.CursoID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&estudiante).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "El QR ya esta en uso")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(estudiante)
}

/* ===================== LIST ===================== */
// GET /api/estudiantes — join con cursos para acotar al colegio.
func (ctrl *EstudianteController) Listar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var estudiantes []model.EstudianteModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Joins("JOIN cursos ON cursos.id = estudiantes.curso_id AND cursos.school_id = ?", auth.SchoolID).
		Order("estudiantes.id").
		Find(&estudiantes).Error; err != nil {
		return err
	}
	return c.JSON(estudiantes)
}
