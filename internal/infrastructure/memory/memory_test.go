package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/internal/application/checkout"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/cart"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// CartStore
// ──────────────────────────────────────────────────────────────────────────────

func stored(id, session string, touched time.Time) *checkout.StoredCart {
	sc := &checkout.StoredCart{ID: id, SessionID: session, Cart: cart.New(cart.KindSale, cart.KeepFirstPrice)}
	sc.Touch(touched)
	return sc
}

func TestCartStore_PutGetDelete(t *testing.T) {
	s := memory.NewCartStore()
	now := time.Now()
	s.Put(stored("a", "s1", now))

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "s1", got.SessionID)

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestCartStore_DeleteBySession(t *testing.T) {
	s := memory.NewCartStore()
	now := time.Now()
	s.Put(stored("a", "s1", now))
	s.Put(stored("b", "s1", now))
	s.Put(stored("c", "s2", now))

	assert.Equal(t, 2, s.DeleteBySession("s1"))
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("c")
	assert.True(t, ok)
}

func TestCartStore_DeleteIdle(t *testing.T) {
	s := memory.NewCartStore()
	now := time.Now()
	s.Put(stored("old", "s1", now.Add(-3*time.Hour)))
	s.Put(stored("new", "s1", now))

	assert.Equal(t, 1, s.DeleteIdle(now.Add(-2*time.Hour)))
	_, ok := s.Get("new")
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionStore
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionStore_Expira(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	clock := now
	s := memory.NewSessionStore(func() time.Time { return clock })
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &entity.Session{ID: "x", Username: "admin", ExpiresAt: now.Add(time.Hour)}))
	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	clock = now.Add(2 * time.Hour)
	_, err = s.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionStore_Delete(t *testing.T) {
	s := memory.NewSessionStore(nil)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &entity.Session{ID: "x"}))
	assert.ErrorIs(t, s.Create(ctx, &entity.Session{ID: "x"}), domain.ErrConflict)

	require.NoError(t, s.Delete(ctx, "x"))
	_, err := s.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionStore_DeleteExpiredSoloLasVencidas(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	s := memory.NewSessionStore(func() time.Time { return now })
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &entity.Session{ID: "vieja", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, s.Create(ctx, &entity.Session{ID: "viva", ExpiresAt: now.Add(time.Hour)}))

	ids, err := s.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"vieja"}, ids)

	_, err = s.Get(ctx, "viva")
	assert.NoError(t, err)
	ids, err = s.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// ──────────────────────────────────────────────────────────────────────────────
// SubmissionLedger
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmissionLedger_ReservaUnaSolaVez(t *testing.T) {
	l := memory.NewSubmissionLedger()
	ctx := context.Background()

	_, reserved, err := l.Reserve(ctx, "k1", "sale")
	require.NoError(t, err)
	assert.True(t, reserved)

	existing, reserved, err := l.Reserve(ctx, "k1", "sale")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, entity.SubmissionPending, existing.Status)
}

func TestSubmissionLedger_CompleteYRelease(t *testing.T) {
	l := memory.NewSubmissionLedger()
	ctx := context.Background()

	_, _, _ = l.Reserve(ctx, "k1", "sale")
	require.NoError(t, l.Complete(ctx, &entity.Submission{Key: "k1", Kind: "sale", ResultID: 7}))

	// una clave completada sobrevive a Release
	require.NoError(t, l.Release(ctx, "k1"))
	got, err := l.FindByKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionCompleted, got.Status)
	assert.Equal(t, int64(7), got.ResultID)

	_, _, _ = l.Reserve(ctx, "k2", "purchase")
	require.NoError(t, l.Release(ctx, "k2"))
	_, err = l.FindByKey(ctx, "k2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, l.Complete(ctx, &entity.Submission{Key: "nope"}), domain.ErrNotFound)
}

func TestSubmissionLedger_ClaveVacia(t *testing.T) {
	_, _, err := memory.NewSubmissionLedger().Reserve(context.Background(), "", "sale")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
