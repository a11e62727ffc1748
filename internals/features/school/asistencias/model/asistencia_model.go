package model

import "time"

// AsistenciaModel registra la presencia de un estudiante en un curso y fecha.
// Fecha es calendario puro (YYYY-MM-DD), sin componente horario.
// Invariante: a lo sumo un registro por (fecha, estudiante, curso, colegio);
// el indice unico es lo unico que arbitra inserciones concurrentes.
type AsistenciaModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	// varchar y no date: un date de postgres vuelve como time.Time y el scan
	// a string lo reformatea a RFC3339, rompiendo el contrato YYYY-MM-DD.
	Fecha        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_asistencia_unica,priority:1" json:"fecha"`
	Presente     bool      `gorm:"not null" json:"presente"`
	EstudianteID uint      `gorm:"not null;uniqueIndex:idx_asistencia_unica,priority:2" json:"estudianteId"`
	CursoID      uint      `gorm:"not null;uniqueIndex:idx_asistencia_unica,priority:3;index" json:"cursoId"`
	PeriodoID    uint      `gorm:"not null;index" json:"periodoId"`
	SchoolID     uint      `gorm:"not null;uniqueIndex:idx_asistencia_unica,priority:4;index" json:"schoolId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (AsistenciaModel) TableName() string { return "asistencias" }
