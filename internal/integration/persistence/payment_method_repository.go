// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/integration/persistence/model"
)

// paymentMethodRepository implements the adapter.PaymentMethodRepository interface.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository instance.
func NewPaymentMethodRepository(db *gorm.DB) adapter.PaymentMethodRepository {
	return &paymentMethodRepository{
		db: db,
	}
}

// FindActiveDefault retrieves the ACTIVE default method of a user within a tenant.
func (r *paymentMethodRepository) FindActiveDefault(ctx context.Context, userID, tenantID uuid.UUID) (*entity.PaymentMethod, error) {
	var m model.PaymentMethodModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		Where("is_default = ? AND status = ?", true, string(entity.PaymentMethodStatusActive)).
		Order("created_at DESC").
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentMethodNotFound
		}
		return nil, result.Error
	}

	return m.ToEntity(), nil
}
