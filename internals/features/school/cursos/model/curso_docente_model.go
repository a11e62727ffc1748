package model

import "time"

// CursoDocenteModel asigna docentes a cursos. Lleva school_id propio como
// defensa en profundidad: la unicidad es por (curso, usuario, colegio).
type CursoDocenteModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CursoID   uint      `gorm:"not null;uniqueIndex:idx_curso_docente_unico,priority:1" json:"cursoId"`
	UsuarioID uint      `gorm:"not null;uniqueIndex:idx_curso_docente_unico,priority:2" json:"usuarioId"`
	SchoolID  uint      `gorm:"not null;uniqueIndex:idx_curso_docente_unico,priority:3" json:"schoolId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CursoDocenteModel) TableName() string { return "curso_docentes" }
