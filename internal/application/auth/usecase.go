package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/entity"
	"github.com/jhoicas/ventas-pos/internal/domain/repository"
	"github.com/jhoicas/ventas-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Operator credencial única del operador del punto de venta.
type Operator struct {
	Username     string
	PasswordHash string // bcrypt
	Role         string
}

// CartDiscarder descarta los carritos de una sesión al cerrarla.
type CartDiscarder interface {
	DiscardSession(sessionID string) int
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	sessions repository.SessionRepository
	carts    CartDiscarder
	operator Operator
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(sessions repository.SessionRepository, carts CartDiscarder, operator Operator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, carts: carts, operator: operator, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica usuario/password, abre una sesión y retorna su token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.operator.Username)) == 1
	// Se compara el hash aunque el usuario no coincida para no filtrar cuál de los dos falló.
	passErr := bcrypt.CompareHashAndPassword([]byte(uc.operator.PasswordHash), []byte(in.Password))
	if !userOK || passErr != nil {
		return nil, domain.ErrUnauthorized
	}

	now := uc.now()
	sess := &entity.Session{
		ID:        uuid.NewString(),
		Username:  uc.operator.Username,
		Role:      uc.operator.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, sess.Username, sess.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		SessionID: sess.ID,
		Username:  sess.Username,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// Logout cierra la sesión y descarta sus carritos.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) (*dto.LogoutResponse, error) {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	n := 0
	if uc.carts != nil {
		n = uc.carts.DiscardSession(sessionID)
	}
	return &dto.LogoutResponse{DiscardedCarts: n}, nil
}

// SweepExpired elimina las sesiones vencidas y descarta sus carritos. Devuelve cuántas se cerraron.
func (uc *AuthUseCase) SweepExpired(ctx context.Context) (int, error) {
	ids, err := uc.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		uc.carts.DiscardSession(id)
	}
	return len(ids), nil
}
