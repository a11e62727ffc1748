package dto

// =======================
// Request DTO
// =======================

type RegistroQRRequest struct {
	QR      string `json:"qr" validate:"required"`
	CursoID uint   `json:"cursoId" validate:"required,min=1"`
	Fecha   string `json:"fecha" validate:"required"`
	// pointer: distingue "no enviado" (default presente) de "false"
	Presente *bool `json:"presente,omitempty"`
}

type ResumenQuery struct {
	CursoID     uint `query:"cursoId" validate:"required,min=1"`
	PeriodoID   uint `query:"periodoId" validate:"required,min=1"`
	TotalClases int  `query:"totalClases" validate:"omitempty,min=0"`
}
