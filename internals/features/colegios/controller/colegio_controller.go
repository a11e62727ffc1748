package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/features/colegios/dto"
	"asistencia_backend/internals/features/colegios/model"
	helper "asistencia_backend/internals/helpers"
)

// Los colegios son la raiz del tenant: su gestion es solo-admin y sin scope
// (el middleware de rol ya corto a cualquier otro rol).
type ColegioController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewColegioController(db *gorm.DB) *ColegioController {
	return &ColegioController{DB: db, validate: validator.New()}
}

// GET /api/colegios
func (ctrl *ColegioController) Listar(c *fiber.Ctx) error {
	var colegios []model.ColegioModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select("id", "nombre").
		Order("id").
		Find(&colegios).Error; err != nil {
		return err
	}
	return c.JSON(colegios)
}

// POST /api/colegios
func (ctrl *ColegioController) Crear(c *fiber.Ctx) error {
	var req dto.ColegioCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	colegio := model.ColegioModel{Nombre: req.Nombre}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&colegio).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(colegio)
}

// PUT /api/colegios/:id
func (ctrl *ColegioController) Actualizar(c *fiber.Ctx) error {
	colegio, err := ctrl.buscarColegio(c)
	if err != nil {
		return err
	}

	var req dto.ColegioUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Nombre != nil {
		colegio.Nombre = *req.Nombre
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(colegio).Error; err != nil {
		return err
	}
	return c.JSON(colegio)
}

// DELETE /api/colegios/:id
func (ctrl *ColegioController) Eliminar(c *fiber.Ctx) error {
	colegio, err := ctrl.buscarColegio(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(colegio).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (ctrl *ColegioController) buscarColegio(c *fiber.Ctx) (*model.ColegioModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalido")
	}
	var colegio model.ColegioModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&colegio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Colegio no encontrado")
		}
		return nil, err
	}
	return &colegio, nil
}
