package model

import "time"

type CursoModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	SchoolID  uint      `gorm:"not null;index" json:"schoolId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CursoModel) TableName() string { return "cursos" }
