package model

import "time"

// ColegioModel es la raiz del tenant: todo lo demas cuelga de un colegio.
type ColegioModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ColegioModel) TableName() string { return "colegios" }
