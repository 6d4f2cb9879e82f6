package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/pkg/i18n"
	"github.com/jhoicas/ventas-pos/pkg/jwt"
)

// Locals keys para la sesión del operador en Fiber.
const (
	LocalSessionID = "session_id"
	LocalUsername  = "username"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y que la sesión siga abierta.
// Carga session_id, username y role en c.Locals.
func AuthMiddleware(jwtSecret string, sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", i18n.KeyUnauthorized)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", i18n.KeyUnauthorized)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", i18n.KeyUnauthorized)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", i18n.KeyUnauthorized)
		}
		// Tras logout el token sigue siendo válido criptográficamente; la sesión no.
		if _, err := sessions.Get(c.UserContext(), claims.SessionID); err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "SESSION_EXPIRED", i18n.KeyUnauthorized)
		}
		c.Locals(LocalSessionID, claims.SessionID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetSessionID devuelve la sesión del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// GetUsername devuelve el operador autenticado.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
