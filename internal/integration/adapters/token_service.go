// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
)

const (
	defaultServiceTokenDuration = time.Hour
	tokenIssuer                 = "receivables"
)

// ServiceClaims represents the claims carried by service tokens.
type ServiceClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with HS256 JWTs.
type tokenService struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

// NewTokenService creates a new token service instance. A non-positive
// duration falls back to one hour.
func NewTokenService(secret string, duration time.Duration) adapter.TokenService {
	if duration <= 0 {
		duration = defaultServiceTokenDuration
	}
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GenerateServiceToken issues a token scoped to a single tenant.
func (s *tokenService) GenerateServiceToken(ctx context.Context, tenantID uuid.UUID, subject string) (string, error) {
	if tenantID == uuid.Nil {
		return "", domainerror.ErrMissingTenant
	}

	now := s.now()
	claims := ServiceClaims{
		TenantID: tenantID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   subject,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign service token: %w", err)
	}
	return token, nil
}

// ValidateAccessToken validates a service token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*ServiceClaims)
	if !ok || !parsed.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil || tenantID == uuid.Nil {
		return nil, domainerror.ErrMissingTenant
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		TenantID:  tenantID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
