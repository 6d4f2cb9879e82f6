package repository

import (
	"context"

	"github.com/jhoicas/ventas-pos/internal/domain/entity"
)

// SubmissionRepository registro de claves de idempotencia de envíos.
//
// Reserve crea la clave en estado pending. Si la clave ya existe devuelve el registro
// existente y reserved=false, sin modificarlo.
type SubmissionRepository interface {
	Reserve(ctx context.Context, key, kind string) (existing *entity.Submission, reserved bool, err error)
	Complete(ctx context.Context, sub *entity.Submission) error
	Release(ctx context.Context, key string) error
	FindByKey(ctx context.Context, key string) (*entity.Submission, error)
}
