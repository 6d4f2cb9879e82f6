package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

// SubmissionRepo registro durable de claves de idempotencia. Sobrevive reinicios, de modo que
// un reintento del cliente tras un corte no duplica la venta.
type SubmissionRepo struct {
	q   Querier
	now func() time.Time
}

// NewSubmissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubmissionRepository(q Querier) *SubmissionRepo {
	return &SubmissionRepo{q: q, now: time.Now}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		idempotency_key TEXT PRIMARY KEY,
		kind            TEXT NOT NULL,
		status          TEXT NOT NULL,
		result_id       BIGINT NOT NULL DEFAULT 0,
		total_price     NUMERIC(14,2) NOT NULL DEFAULT 0,
		paid_amount     NUMERIC(14,2) NOT NULL DEFAULT 0,
		debt            NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions (status, updated_at)`,
}

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return NewTxRunner(pool).Run(ctx, func(q Querier) error {
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema submissions: %w", err)
			}
		}
		return nil
	})
}

// Reserve inserta la clave como pending; si ya existe devuelve el registro vigente.
func (r *SubmissionRepo) Reserve(ctx context.Context, key, kind string) (*entity.Submission, bool, error) {
	if key == "" {
		return nil, false, domain.ErrInvalidInput
	}
	query := `
		INSERT INTO submissions (idempotency_key, kind, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (idempotency_key) DO NOTHING`
	// Un Release concurrente puede borrar la fila entre el INSERT y el SELECT: se reintenta una vez.
	for attempt := 0; attempt < 2; attempt++ {
		tag, err := r.q.Exec(ctx, query, key, kind, string(entity.SubmissionPending), r.now())
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, false, fmt.Errorf("reserve submission: %w", err)
		}
		if tag.RowsAffected() == 1 {
			return nil, true, nil
		}
		existing, err := r.FindByKey(ctx, key)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return nil, false, fmt.Errorf("reserve submission %s: %w", key, domain.ErrSubmissionPending)
}

// Complete marca la clave como completada con el resultado de la API remota.
func (r *SubmissionRepo) Complete(ctx context.Context, sub *entity.Submission) error {
	query := `
		UPDATE submissions
		SET status = $2, result_id = $3, total_price = $4, paid_amount = $5, debt = $6, updated_at = $7
		WHERE idempotency_key = $1`
	tag, err := r.q.Exec(ctx, query,
		sub.Key, string(entity.SubmissionCompleted), sub.ResultID, sub.TotalPrice, sub.PaidAmount, sub.Debt, r.now(),
	)
	if err != nil {
		return fmt.Errorf("complete submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Release borra la clave si sigue pendiente.
func (r *SubmissionRepo) Release(ctx context.Context, key string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM submissions WHERE idempotency_key = $1 AND status = $2`,
		key, string(entity.SubmissionPending),
	)
	if err != nil {
		return fmt.Errorf("release submission: %w", err)
	}
	return nil
}

// FindByKey devuelve domain.ErrNotFound si la clave no existe.
func (r *SubmissionRepo) FindByKey(ctx context.Context, key string) (*entity.Submission, error) {
	query := `
		SELECT idempotency_key, kind, status, result_id, total_price, paid_amount, debt, created_at, updated_at
		FROM submissions WHERE idempotency_key = $1`
	var s entity.Submission
	var status string
	err := r.q.QueryRow(ctx, query, key).Scan(
		&s.Key, &s.Kind, &status, &s.ResultID, &s.TotalPrice, &s.PaidAmount, &s.Debt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	s.Status = entity.SubmissionStatus(status)
	return &s, nil
}
