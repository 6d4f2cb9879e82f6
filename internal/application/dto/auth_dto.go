package dto

import "time"

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token Bearer y datos de la sesión.
type LoginResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"sessionId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LogoutResponse carritos descartados al cerrar la sesión.
type LogoutResponse struct {
	DiscardedCarts int `json:"discardedCarts"`
}
