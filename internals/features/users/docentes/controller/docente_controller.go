package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	cursoModel "asistencia_backend/internals/features/school/cursos/model"
	authService "asistencia_backend/internals/features/users/auth/service"
	"asistencia_backend/internals/features/users/docentes/dto"
	userModel "asistencia_backend/internals/features/users/user/model"
	helper "asistencia_backend/internals/helpers"
)

type DocenteController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewDocenteController(db *gorm.DB) *DocenteController {
	return &DocenteController{DB: db, validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/docentes — crea el usuario docente y sus asignaciones de curso.
func (ctrl *DocenteController) Crear(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req dto.DocenteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return err
	}

	schoolID := auth.ResolveSchoolID(req.SchoolID)
	docente := userModel.UsuarioModel{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: hash,
		Rol:          constants.RoleDocente,
		SchoolID:     schoolID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&docente).Error; err != nil {
			return err
		}
		if len(req.CursoIDs) > 0 {
			return reemplazarCursos(tx, docente.ID, schoolID, req.CursoIDs)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "El email ya esta registrado")
		}
		return err
	}

	resp, err := ctrl.armarRespuesta(c, docente)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

/* ===================== LIST ===================== */
// GET /api/docentes?schoolId= — docentes del colegio con sus cursos.
func (ctrl *DocenteController) Listar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	schoolID := auth.ResolveSchoolID(uint(c.QueryInt("schoolId")))
	var docentes []userModel.UsuarioModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("school_id = ? AND rol = ?", schoolID, constants.RoleDocente).
		Order("id").
		Find(&docentes).Error; err != nil {
		return err
	}

	respuesta := make([]dto.DocenteResponse, 0, len(docentes))
	for _, d := range docentes {
		resp, err := ctrl.armarRespuesta(c, d)
		if err != nil {
			return err
		}
		respuesta = append(respuesta, resp)
	}
	return c.JSON(respuesta)
}

/* ===================== UPDATE ===================== */
// PUT /api/docentes/:id — admin puede moverlo de colegio (schoolId explicito).
func (ctrl *DocenteController) Actualizar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	docente, err := ctrl.buscarDocente(c, auth)
	if err != nil {
		return err
	}

	var req dto.DocenteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	targetSchoolID := docente.SchoolID
	if auth.IsAdmin() && req.SchoolID != 0 {
		targetSchoolID = req.SchoolID
	}

	if req.Nombre != nil {
		docente.Nombre = *req.Nombre
	}
	if req.Email != nil {
		docente.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := authService.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		docente.PasswordHash = hash
	}
	docente.SchoolID = targetSchoolID

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(docente).Error; err != nil {
			return err
		}
		if req.CursoIDs != nil {
			if err := tx.Where("usuario_id = ?", docente.ID).
				Delete(&cursoModel.CursoDocenteModel{}).Error; err != nil {
				return err
			}
			return reemplazarCursos(tx, docente.ID, targetSchoolID, *req.CursoIDs)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "El email ya esta registrado")
		}
		return err
	}

	resp, err := ctrl.armarRespuesta(c, *docente)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

/* ===================== DELETE ===================== */
// DELETE /api/docentes/:id
func (ctrl *DocenteController) Eliminar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	docente, err := ctrl.buscarDocente(c, auth)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", docente.ID).
			Delete(&cursoModel.CursoDocenteModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(docente).Error
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

/* ===================== helpers ===================== */

func (ctrl *DocenteController) buscarDocente(c *fiber.Ctx, auth helper.AuthContext) (*userModel.UsuarioModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalido")
	}
	q := ctrl.DB.WithContext(c.UserContext()).
		Where("id = ? AND rol = ?", id, constants.RoleDocente)
	if !auth.IsAdmin() {
		q = q.Where("school_id = ?", auth.SchoolID)
	}
	var docente userModel.UsuarioModel
	if err := q.First(&docente).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Docente no encontrado")
		}
		return nil, err
	}
	return &docente, nil
}

func (ctrl *DocenteController) armarRespuesta(c *fiber.Ctx, docente userModel.UsuarioModel) (dto.DocenteResponse, error) {
	var cursos []cursoModel.CursoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Joins("JOIN curso_docentes ON curso_docentes.curso_id = cursos.id AND curso_docentes.usuario_id = ?", docente.ID).
		Find(&cursos).Error; err != nil {
		return dto.DocenteResponse{}, err
	}
	lite := make([]dto.CursoLite, 0, len(cursos))
	for _, cu := range cursos {
		lite = append(lite, dto.CursoLite{ID: cu.ID, Nombre: cu.Nombre})
	}
	return dto.DocenteResponse{
		ID:       docente.ID,
		Nombre:   docente.Nombre,
		Email:    docente.Email,
		Rol:      docente.Rol,
		SchoolID: docente.SchoolID,
		Cursos:   lite,
	}, nil
}

// reemplazarCursos asigna solo cursos que existen en el colegio destino.
func reemplazarCursos(tx *gorm.DB, usuarioID, schoolID uint, cursoIDs []uint) error {
	if len(cursoIDs) == 0 {
		return nil
	}
	var cursos []cursoModel.CursoModel
	if err := tx.Where("id IN ? AND school_id = ?", cursoIDs, schoolID).Find(&cursos).Error; err != nil {
		return err
	}
	for _, cu := range cursos {
		if err := tx.Create(&cursoModel.CursoDocenteModel{
			CursoID:   cu.ID,
			UsuarioID: usuarioID,
			SchoolID:  schoolID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
