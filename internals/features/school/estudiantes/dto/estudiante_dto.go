package dto

type EstudianteCreateRequest struct {
	Nombres   string `json:"nombres" validate:"required"`
	Apellidos string `json:"apellidos" validate:"required"`
	// Vacio: se genera un token de escaneo nuevo.
	QR      string `json:"qr,omitempty" validate:"omitempty,max=255"`
	CursoID uint   `json:"cursoId" validate:"required,min=1"`
}
