package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionStatus estado de una clave de idempotencia.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionCompleted SubmissionStatus = "completed"
)

// Submission registro de un envío de carrito a la API remota, indexado por clave de idempotencia.
type Submission struct {
	Key        string
	Kind       string // sale | purchase
	Status     SubmissionStatus
	ResultID   int64 // id de la venta o compra creada
	TotalPrice decimal.Decimal
	PaidAmount decimal.Decimal
	Debt       decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
