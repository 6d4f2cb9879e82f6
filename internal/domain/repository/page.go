package repository

// PageRequest página (base 0) y tamaño para listados paginados de la API remota.
type PageRequest struct {
	Page int
	Size int
}

// Normalize aplica valores por defecto: página 0, tamaño 10, máximo 100.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 10
	}
	if p.Size > 100 {
		p.Size = 100
	}
	return p
}

// Page resultado paginado.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
