package dto

import "time"

type PeriodoCreateRequest struct {
	Nombre      string    `json:"nombre" validate:"required"`
	FechaInicio time.Time `json:"fechaInicio" validate:"required"`
	FechaFin    time.Time `json:"fechaFin" validate:"required,gtefield=FechaInicio"`
	// Solo admin: apuntar a otro colegio.
	SchoolID uint `json:"schoolId,omitempty"`
}

type PeriodoUpdateRequest struct {
	Nombre      *string    `json:"nombre,omitempty" validate:"omitempty,min=1"`
	FechaInicio *time.Time `json:"fechaInicio,omitempty"`
	FechaFin    *time.Time `json:"fechaFin,omitempty"`
}
