package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

// SessionStore sesiones de operador. Se pierden al reiniciar el proceso.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
}

var _ repository.SessionRepository = (*SessionStore)(nil)

// NewSessionStore crea un almacén vacío. now es opcional.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{sessions: make(map[string]entity.Session), now: now}
}

func (s *SessionStore) Create(_ context.Context, sess *entity.Session) error {
	if sess == nil || sess.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; ok {
		return domain.ErrConflict
	}
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, domain.ErrSessionExpired
	}
	return &sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) DeleteExpired(_ context.Context) ([]string, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}
