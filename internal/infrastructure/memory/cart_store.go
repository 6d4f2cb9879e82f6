// Package memory implementa almacenes en memoria de proceso: carritos activos, sesiones
// y el registro de envíos cuando no hay base de datos configurada.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/ventas-pos/internal/application/checkout"
)

// CartStore carritos activos indexados por id.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*checkout.StoredCart
}

var _ checkout.CartStore = (*CartStore)(nil)

// NewCartStore crea un almacén vacío.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*checkout.StoredCart)}
}

func (s *CartStore) Put(sc *checkout.StoredCart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sc.ID] = sc
}

func (s *CartStore) Get(id string) (*checkout.StoredCart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.carts[id]
	return sc, ok
}

func (s *CartStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

func (s *CartStore) DeleteBySession(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sc := range s.carts {
		if sc.SessionID == sessionID {
			delete(s.carts, id)
			n++
		}
	}
	return n
}

func (s *CartStore) DeleteIdle(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sc := range s.carts {
		if sc.TouchedAt().Before(before) {
			delete(s.carts, id)
			n++
		}
	}
	return n
}

// Len cantidad de carritos activos.
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
