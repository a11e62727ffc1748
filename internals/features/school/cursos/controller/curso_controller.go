package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	"asistencia_backend/internals/features/school/cursos/dto"
	"asistencia_backend/internals/features/school/cursos/model"
	userModel "asistencia_backend/internals/features/users/user/model"
	helper "asistencia_backend/internals/helpers"
)

type CursoController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewCursoController(db *gorm.DB) *CursoController {
	return &CursoController{DB: db, validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/cursos — docente queda auto-asignado; admin puede pasar docenteIds.
func (ctrl *CursoController) Crear(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	var req dto.CursoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID := auth.ResolveSchoolID(req.SchoolID)
	curso := model.CursoModel{Nombre: req.Nombre, SchoolID: schoolID}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&curso).Error; err != nil {
			return err
		}
		if auth.IsDocente() {
			return tx.Create(&model.CursoDocenteModel{
				CursoID:   curso.ID,
				UsuarioID: auth.UserID,
				SchoolID:  schoolID,
			}).Error
		}
		if len(req.DocenteIDs) > 0 {
			return asignarDocentes(tx, curso.ID, schoolID, req.DocenteIDs)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(curso)
}

/* ===================== LIST ===================== */
// GET /api/cursos?q=&schoolId= — docente ve solo los cursos asignados.
func (ctrl *CursoController) Listar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	schoolID := auth.ResolveSchoolID(uint(c.QueryInt("schoolId")))
	q := ctrl.DB.WithContext(c.UserContext()).Where("cursos.school_id = ?", schoolID)
	if texto := c.Query("q"); texto != "" {
		q = q.Where("cursos.nombre LIKE ?", "%"+texto+"%")
	}
	if auth.IsDocente() {
		q = q.Joins("JOIN curso_docentes ON curso_docentes.curso_id = cursos.id AND curso_docentes.usuario_id = ?", auth.UserID)
	}

	var cursos []model.CursoModel
	if err := q.Find(&cursos).Error; err != nil {
		return err
	}
	return c.JSON(cursos)
}

/* ===================== UPDATE ===================== */
// PUT /api/cursos/:id
func (ctrl *CursoController) Actualizar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	curso, err := ctrl.buscarCurso(c, auth.SchoolID)
	if err != nil {
		return err
	}
	if errResp := ctrl.exigirAsignacion(c, auth, curso.ID); errResp != nil {
		return errResp
	}

	var req dto.CursoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalido")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.Nombre != nil {
			curso.Nombre = *req.Nombre
			if err := tx.Save(curso).Error; err != nil {
				return err
			}
		}
		// Reemplazo de asignaciones: solo roles administrativos.
		if !auth.IsDocente() && req.DocenteIDs != nil {
			if err := tx.Where("curso_id = ?", curso.ID).
				Delete(&model.CursoDocenteModel{}).Error; err != nil {
				return err
			}
			return asignarDocentes(tx, curso.ID, auth.SchoolID, *req.DocenteIDs)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(curso)
}

/* ===================== DELETE ===================== */
// DELETE /api/cursos/:id
func (ctrl *CursoController) Eliminar(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}

	curso, err := ctrl.buscarCurso(c, auth.SchoolID)
	if err != nil {
		return err
	}
	if errResp := ctrl.exigirAsignacion(c, auth, curso.ID); errResp != nil {
		return errResp
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("curso_id = ?", curso.ID).
			Delete(&model.CursoDocenteModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(curso).Error
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

/* ===================== SEED ASIGNACION ===================== */
// POST /api/curso-docentes/seed — crea una asignacion de ejemplo en el colegio.
func (ctrl *CursoController) SeedCursoDocente(c *fiber.Ctx) error {
	auth, err := helper.GetAuthContext(c)
	if err != nil {
		return err
	}
	db := ctrl.DB.WithContext(c.UserContext())

	var curso model.CursoModel
	if err := db.Where("school_id = ?", auth.SchoolID).First(&curso).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No hay cursos en este colegio")
		}
		return err
	}
	var docente userModel.UsuarioModel
	if err := db.Where("school_id = ? AND rol = ?", auth.SchoolID, constants.RoleDocente).
		First(&docente).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No hay docentes en este colegio")
		}
		return err
	}

	var existente model.CursoDocenteModel
	err = db.Where("curso_id = ? AND usuario_id = ? AND school_id = ?", curso.ID, docente.ID, auth.SchoolID).
		First(&existente).Error
	if err == nil {
		return c.JSON(fiber.Map{"created": false, "message": "Ya existe asignacion", "data": existente})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	registro := model.CursoDocenteModel{CursoID: curso.ID, UsuarioID: docente.ID, SchoolID: auth.SchoolID}
	if err := db.Create(&registro).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": true, "data": registro})
}

/* ===================== helpers ===================== */

func (ctrl *CursoController) buscarCurso(c *fiber.Ctx, schoolID uint) (*model.CursoModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id invalido")
	}
	var curso model.CursoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		First(&curso).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
		}
		return nil, err
	}
	return &curso, nil
}

// Un docente solo puede tocar cursos a los que esta asignado.
func (ctrl *CursoController) exigirAsignacion(c *fiber.Ctx, auth helper.AuthContext, cursoID uint) error {
	if !auth.IsDocente() {
		return nil
	}
	var count int64
	if err := ctrl.DB.Model(&model.CursoDocenteModel{}).
		Where("curso_id = ? AND usuario_id = ?", cursoID, auth.UserID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "No autorizado")
	}
	return nil
}

// asignarDocentes inserta asignaciones solo para usuarios que son docentes del
// colegio destino; ids ajenos se ignoran en silencio, como filtro de scope.
func asignarDocentes(tx *gorm.DB, cursoID, schoolID uint, docenteIDs []uint) error {
	if len(docenteIDs) == 0 {
		return nil
	}
	var docentes []userModel.UsuarioModel
	if err := tx.Where("id IN ? AND school_id = ? AND rol = ?", docenteIDs, schoolID, constants.RoleDocente).
		Find(&docentes).Error; err != nil {
		return err
	}
	for _, d := range docentes {
		if err := tx.Create(&model.CursoDocenteModel{
			CursoID:   cursoID,
			UsuarioID: d.ID,
			SchoolID:  schoolID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
