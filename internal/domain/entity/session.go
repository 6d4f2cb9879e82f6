package entity

import "time"

// Session sesión de operador abierta con login. Los carritos pertenecen a una sesión.
type Session struct {
	ID        string
	Username  string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
