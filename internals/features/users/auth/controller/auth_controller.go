package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/features/users/auth/service"
	helper "asistencia_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, validate: validator.New()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ac.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := service.Login(c.UserContext(), ac.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		log.Println("[ERROR] login:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno")
	}

	return c.JSON(fiber.Map{
		"token": res.Token,
		"user": fiber.Map{
			"id":         res.Usuario.ID,
			"nombre":     res.Usuario.Nombre,
			"email":      res.Usuario.Email,
			"rol":        res.Usuario.Rol,
			"schoolId":   res.Usuario.SchoolID,
			"schoolName": res.SchoolName,
		},
	})
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token := helper.GetRawAccessToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token requerido")
	}
	if err := service.Logout(c.UserContext(), ac.DB, token); err != nil {
		log.Println("[ERROR] logout:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error interno")
	}
	return c.JSON(fiber.Map{"ok": true})
}
