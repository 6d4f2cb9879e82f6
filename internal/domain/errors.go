package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUpstream          = errors.New("fallo de la API remota")
	ErrSessionExpired    = errors.New("sesión expirada o cerrada")
	ErrSubmissionPending = errors.New("ya hay un envío en curso para esta clave")
)
