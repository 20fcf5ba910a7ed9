// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// PaymentMethodRepository defines the read-only interface for stored payment methods.
//
//go:generate mockgen -destination=mocks/mock_payment_method_repository.go -package=mocks -source=payment_method_repository.go PaymentMethodRepository
type PaymentMethodRepository interface {
	// FindActiveDefault retrieves the ACTIVE default method of a user within a tenant.
	// Returns ErrPaymentMethodNotFound if there is none.
	FindActiveDefault(ctx context.Context, userID, tenantID uuid.UUID) (*entity.PaymentMethod, error)
}
