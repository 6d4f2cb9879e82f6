package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-pos/pkg/config"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func TestSubmissionRepo(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, postgres.EnsureSchema(ctx, pool))

	repo := postgres.NewSubmissionRepository(pool)
	key := "test-" + uuid.NewString()

	_, reserved, err := repo.Reserve(ctx, key, "sale")
	require.NoError(t, err)
	assert.True(t, reserved)

	existing, reserved, err := repo.Reserve(ctx, key, "sale")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, entity.SubmissionPending, existing.Status)

	require.NoError(t, repo.Complete(ctx, &entity.Submission{
		Key: key, ResultID: 9, TotalPrice: decimal.RequireFromString("25.00"),
		PaidAmount: decimal.RequireFromString("10.00"), Debt: decimal.RequireFromString("15.00"),
	}))
	require.NoError(t, repo.Release(ctx, key))

	got, err := repo.FindByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionCompleted, got.Status)
	assert.Equal(t, int64(9), got.ResultID)
	assert.True(t, got.Debt.Equal(decimal.RequireFromString("15")))

	pending := key + "-p"
	_, _, _ = repo.Reserve(ctx, pending, "purchase")
	require.NoError(t, repo.Release(ctx, pending))
	_, err = repo.FindByKey(ctx, pending)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
