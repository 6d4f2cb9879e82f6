package dto

import "github.com/jhoicas/ventas-pos/internal/domain"

// PageRequest paginación para listados (página base 0).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ErrorResponse cuerpo de error HTTP. Reasons solo en errores de validación.
type ErrorResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Reasons []ReasonResponse `json:"reasons,omitempty"`
}

// ReasonResponse violación traducida.
type ReasonResponse struct {
	Field   string        `json:"field"`
	Reason  domain.Reason `json:"reason"`
	Message string        `json:"message"`
}
