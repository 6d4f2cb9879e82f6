package checkout

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/ventas-pos/internal/domain/cart"
)

// CartStore almacén en memoria de carritos activos. Implementación en infrastructure/memory.
type CartStore interface {
	Put(sc *StoredCart)
	Get(id string) (*StoredCart, bool)
	Delete(id string)
	// DeleteBySession elimina los carritos de la sesión y devuelve cuántos eran.
	DeleteBySession(sessionID string) int
	// DeleteIdle elimina los carritos sin actividad desde before.
	DeleteIdle(before time.Time) int
}

// StoredCart carrito más sus metadatos de sesión. mu serializa mutaciones del mismo carrito.
type StoredCart struct {
	ID        string
	SessionID string
	Cart      *cart.Cart
	StartedAt time.Time

	// Solo en ediciones de compra.
	PurchaseID int64
	CreatedAt  time.Time
	Remark     string

	mu        sync.Mutex
	submitted bool
	touched   atomic.Int64
}

// Touch registra actividad en t.
func (sc *StoredCart) Touch(t time.Time) { sc.touched.Store(t.UnixNano()) }

// TouchedAt última actividad.
func (sc *StoredCart) TouchedAt() time.Time { return time.Unix(0, sc.touched.Load()) }
