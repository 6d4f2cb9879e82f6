package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-pos/internal/application/auth"
	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/pkg/i18n"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// AuthHandler maneja login y logout del operador.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", i18n.KeyInvalidCredentials)
		}
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("username", out.Username).Str("session", out.SessionID).Msg("sesión iniciada")
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión y descartar sus carritos
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.LogoutResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	out, err := h.uc.Logout(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
