package dto

type ColegioCreateRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type ColegioUpdateRequest struct {
	Nombre *string `json:"nombre,omitempty" validate:"omitempty,min=1"`
}
