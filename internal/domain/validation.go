package domain

import "strings"

// Reason identifica la causa de un rechazo de validación. La capa HTTP la traduce
// al idioma del usuario; el dominio nunca produce textos visibles.
type Reason string

const (
	ReasonRequired             Reason = "required"
	ReasonMustBePositive       Reason = "must_be_positive"
	ReasonMustNotBeNegative    Reason = "must_not_be_negative"
	ReasonInvalidFormat        Reason = "invalid_format"
	ReasonEmptyCart            Reason = "empty_cart"
	ReasonMissingCounterparty  Reason = "missing_counterparty"
	ReasonNegativePaid         Reason = "negative_paid"
	ReasonPaidExceedsLiability Reason = "paid_exceeds_liability"
	ReasonInsufficientStock    Reason = "insufficient_stock"
	ReasonCounterpartyLocked   Reason = "counterparty_locked"
	ReasonLineNotFound         Reason = "line_not_found"
)

// Violation campo + causa.
type Violation struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
}

// ValidationResult acumula violaciones de un formulario o de una regla de negocio.
type ValidationResult struct {
	Violations []Violation
}

// Add registra una violación.
func (r *ValidationResult) Add(field string, reason Reason) {
	r.Violations = append(r.Violations, Violation{Field: field, Reason: reason})
}

// OK indica si no hubo violaciones.
func (r ValidationResult) OK() bool { return len(r.Violations) == 0 }

// Has indica si la causa está entre las violaciones.
func (r ValidationResult) Has(reason Reason) bool {
	for _, v := range r.Violations {
		if v.Reason == reason {
			return true
		}
	}
	return false
}

// Err devuelve nil si el resultado es válido o un *ValidationError con las violaciones.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Violations: append([]Violation(nil), r.Violations...)}
}

// ValidationError error tipado con las violaciones. errors.Is(err, ErrInvalidInput) es true
// salvo que Cause indique otra categoría (p. ej. ErrInsufficientStock o ErrConflict).
type ValidationError struct {
	Violations []Violation
	Cause      error
}

// NewValidationError atajo para una única violación.
func NewValidationError(field string, reason Reason) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Reason: reason}}}
}

// WithCause asigna la categoría de error subyacente.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.Cause = cause
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+string(v.Reason))
	}
	return "validación: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrInvalidInput
}
