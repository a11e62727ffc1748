package model

import "time"

// PeriodoModel es un termino academico. Solo se usa como ventana [inicio, fin]
// inclusiva para validar fechas de asistencia; no se controla solapamiento.
type PeriodoModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"not null" json:"nombre"`
	FechaInicio time.Time `gorm:"not null" json:"fechaInicio"`
	FechaFin    time.Time `gorm:"not null" json:"fechaFin"`
	SchoolID    uint      `gorm:"not null;index" json:"schoolId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (PeriodoModel) TableName() string { return "periodos" }
