package repository

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// SessionRepository almacén de sesiones de operador. Get devuelve domain.ErrSessionExpired
// si la sesión no existe o venció.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired elimina las sesiones vencidas y devuelve sus IDs.
	DeleteExpired(ctx context.Context) ([]string, error)
}
