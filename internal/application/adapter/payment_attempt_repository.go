// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// PaymentAttemptRepository defines the interface for the dunning retry ledger.
//
//go:generate mockgen -destination=mocks/mock_payment_attempt_repository.go -package=mocks -source=payment_attempt_repository.go PaymentAttemptRepository
type PaymentAttemptRepository interface {
	// Create records a retry attempt.
	Create(ctx context.Context, attempt *entity.PaymentAttempt) error

	// ListByInvoice retrieves attempts for an invoice, oldest first.
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.PaymentAttempt, error)
}
