// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// FindMatchCandidates retrieves SENT or UNPAID invoices created within the window.
func (r *invoiceRepository) FindMatchCandidates(ctx context.Context, tenantID uuid.UUID, window valueobject.DateRange) ([]*entity.Invoice, error) {
	var models []model.InvoiceModel

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ?", tenantID, payableStatuses()).
		Where("created_at >= ? AND created_at <= ?", window.Start.UTC(), window.End.UTC()).
		Order("created_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return toInvoiceEntities(models), nil
}

// ListUnpaid retrieves UNPAID invoices with their client, oldest first.
func (r *invoiceRepository) ListUnpaid(ctx context.Context, tenantID uuid.UUID) ([]*entity.Invoice, error) {
	var models []model.InvoiceModel

	result := r.db.WithContext(ctx).
		Preload("Client").
		Where("tenant_id = ? AND status = ?", tenantID, string(entity.InvoiceStatusUnpaid)).
		Order("created_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return toInvoiceEntities(models), nil
}

// GetByID retrieves an invoice by ID.
func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var m model.InvoiceModel
	result := r.db.WithContext(ctx).Preload("Client").Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// MarkPaid transitions a tenant's invoice to PAID.
func (r *invoiceRepository) MarkPaid(ctx context.Context, tenantID, id uuid.UUID, paidAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"status":     string(entity.InvoiceStatusPaid),
			"paid_at":    paidAt.UTC(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvoiceNotFound
	}
	return nil
}

// MarkEscalated stamps escalated_at unless it is already set.
func (r *invoiceRepository) MarkEscalated(ctx context.Context, tenantID, id uuid.UUID, escalatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ? AND tenant_id = ? AND escalated_at IS NULL", id, tenantID).
		Updates(map[string]interface{}{
			"escalated_at": escalatedAt.UTC(),
			"updated_at":   time.Now().UTC(),
		}).Error
}

// GetStats aggregates invoice count and total for a tenant.
func (r *invoiceRepository) GetStats(ctx context.Context, tenantID uuid.UUID) (*adapter.InvoiceStatsData, error) {
	var row struct {
		Count int
		Total int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_cents), 0) AS total").
		Where("tenant_id = ?", tenantID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.InvoiceStatsData{
		Count:      row.Count,
		TotalCents: row.Total,
	}, nil
}

// ListTenantIDsWithUnpaid retrieves tenants that currently have UNPAID invoices.
func (r *invoiceRepository) ListTenantIDsWithUnpaid(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("status = ?", string(entity.InvoiceStatusUnpaid)).
		Distinct("tenant_id").
		Order("tenant_id").
		Pluck("tenant_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func toInvoiceEntities(models []model.InvoiceModel) []*entity.Invoice {
	invoices := make([]*entity.Invoice, len(models))
	for i := range models {
		invoices[i] = models[i].ToEntity()
	}
	return invoices
}
