package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// SubmissionLedger registro de claves de idempotencia en memoria.
type SubmissionLedger struct {
	mu    sync.Mutex
	byKey map[string]*entity.Submission
	now   func() time.Time
}

var _ repository.SubmissionRepository = (*SubmissionLedger)(nil)

// NewSubmissionLedger crea un registro vacío.
func NewSubmissionLedger() *SubmissionLedger {
	return &SubmissionLedger{byKey: make(map[string]*entity.Submission), now: time.Now}
}

func (l *SubmissionLedger) Reserve(_ context.Context, key, kind string) (*entity.Submission, bool, error) {
	if key == "" {
		return nil, false, domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.byKey[key]; ok {
		return clone(existing), false, nil
	}
	now := l.now()
	l.byKey[key] = &entity.Submission{
		Key:       key,
		Kind:      kind,
		Status:    entity.SubmissionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil, true, nil
}

func (l *SubmissionLedger) Complete(_ context.Context, sub *entity.Submission) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	existing, ok := l.byKey[sub.Key]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *sub
	cp.Status = entity.SubmissionCompleted
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = l.now()
	l.byKey[sub.Key] = &cp
	return nil
}

// Release borra una clave pendiente. Una clave completada no se libera.
func (l *SubmissionLedger) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.byKey[key]; ok && existing.Status == entity.SubmissionPending {
		delete(l.byKey, key)
	}
	return nil
}

func (l *SubmissionLedger) FindByKey(_ context.Context, key string) (*entity.Submission, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	existing, ok := l.byKey[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(existing), nil
}

func clone(s *entity.Submission) *entity.Submission {
	cp := *s
	return &cp
}
