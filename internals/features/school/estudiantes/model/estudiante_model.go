package model

import "time"

// EstudianteModel pertenece a exactamente un curso (y por transitividad a un
// colegio). El QR es el identificador de escaneo, unico en todo el sistema.
type EstudianteModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombres   string    `gorm:"not null" json:"nombres"`
	Apellidos string    `gorm:"not null" json:"apellidos"`
	QR        string    `gorm:"column:qr;uniqueIndex;not null" json:"qr"`
	CursoID   uint      `gorm:"not null;index" json:"cursoId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (EstudianteModel) TableName() string { return "estudiantes" }

func (e *EstudianteModel) NombreCompleto() string {
	return e.Nombres + " " + e.Apellidos
}
