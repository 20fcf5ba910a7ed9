// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a service JWT token.
type TokenClaims struct {
	Subject   string
	TenantID  uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations on the job trigger API.
//
//go:generate mockgen -destination=mocks/mock_token_service.go -package=mocks -source=token_service.go TokenService
type TokenService interface {
	// GenerateServiceToken issues a tenant-scoped token for batch triggers.
	GenerateServiceToken(ctx context.Context, tenantID uuid.UUID, subject string) (string, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
