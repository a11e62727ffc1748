package model

import (
	"time"

	"asistencia_backend/internals/constants"
)

type UsuarioModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Nombre       string         `gorm:"not null" json:"nombre"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Rol          constants.Role `gorm:"type:varchar(20);not null" json:"rol"`
	SchoolID     uint           `gorm:"not null;index" json:"schoolId"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
