package dto

import "asistencia_backend/internals/constants"

// =======================
// Request DTO
// =======================

type DocenteCreateRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	CursoIDs []uint `json:"cursoIds,omitempty"`
	// Solo admin: crear el docente en otro colegio.
	SchoolID uint `json:"schoolId,omitempty"`
}

type DocenteUpdateRequest struct {
	Nombre   *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4"`
	CursoIDs *[]uint `json:"cursoIds,omitempty"`
	SchoolID uint    `json:"schoolId,omitempty"`
}

// =======================
// Response DTO
// =======================

type CursoLite struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type DocenteResponse struct {
	ID       uint           `json:"id"`
	Nombre   string         `json:"nombre"`
	Email    string         `json:"email"`
	Rol      constants.Role `json:"rol"`
	SchoolID uint           `json:"schoolId"`
	Cursos   []CursoLite    `json:"cursos"`
}
