// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	"github.com/ledgerline/receivables/internal/integration/persistence/model"
)

// paymentAttemptRepository implements the adapter.PaymentAttemptRepository interface.
type paymentAttemptRepository struct {
	db *gorm.DB
}

// NewPaymentAttemptRepository creates a new payment attempt repository instance.
func NewPaymentAttemptRepository(db *gorm.DB) adapter.PaymentAttemptRepository {
	return &paymentAttemptRepository{
		db: db,
	}
}

// Create records a retry attempt.
func (r *paymentAttemptRepository) Create(ctx context.Context, attempt *entity.PaymentAttempt) error {
	return r.db.WithContext(ctx).Create(model.PaymentAttemptFromEntity(attempt)).Error
}

// ListByInvoice retrieves attempts for an invoice, oldest first.
func (r *paymentAttemptRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.PaymentAttempt, error) {
	var models []model.PaymentAttemptModel

	result := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("attempted_at ASC, attempt_number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	attempts := make([]*entity.PaymentAttempt, len(models))
	for i := range models {
		attempts[i] = models[i].ToEntity()
	}
	return attempts, nil
}
