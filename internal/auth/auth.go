package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/internal/users"
	"pm-ajay/monitoring-backend/pkg/apperr"
)

// Claims carried in issued tokens. Role mirrors the user's hierarchy role
// and is what RequireRoles gates on.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	users  *users.Service
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(userSvc *users.Service, secret string, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{users: userSvc, secret: []byte(secret), ttl: ttl, logger: logger}
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *users.User `json:"user"`
}

// Login issues a token for a known active user. Credential verification is
// delegated to the identity gateway in front of this service; this endpoint
// only maps a verified email to a role-scoped token.
func (s *Service) Login(ctx context.Context, email string) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Validation("account is disabled", nil)
	}

	expiresAt := time.Now().Add(s.ttl)
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperr.Internal("failed to sign token", err)
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role))
	return &LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ParseToken validates a bearer token and returns its claims.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	return claims, nil
}

// Enabled reports whether token checks are active. With no secret
// configured the API runs open, which is how local development works.
func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
