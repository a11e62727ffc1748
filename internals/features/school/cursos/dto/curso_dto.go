package dto

// =======================
// Request DTO
// =======================

type CursoCreateRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	// Solo admin: apuntar a otro colegio.
	SchoolID   uint   `json:"schoolId,omitempty"`
	DocenteIDs []uint `json:"docenteIds,omitempty"`
}

type CursoUpdateRequest struct {
	Nombre *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
	// pointer: distingue "no tocar asignaciones" de "reemplazar por esta lista"
	DocenteIDs *[]uint `json:"docenteIds,omitempty"`
}
