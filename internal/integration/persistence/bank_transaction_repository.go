// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/integration/persistence/model"
)

// bankTransactionRepository implements the adapter.BankTransactionRepository interface.
type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a new bank transaction repository instance.
func NewBankTransactionRepository(db *gorm.DB) adapter.BankTransactionRepository {
	return &bankTransactionRepository{
		db: db,
	}
}

// ListUnmatched retrieves unmatched transactions of a connection in date order.
func (r *bankTransactionRepository) ListUnmatched(ctx context.Context, connectionID, tenantID uuid.UUID) ([]*entity.BankTransaction, error) {
	var models []model.BankTransactionModel

	result := r.db.WithContext(ctx).
		Where("connection_id = ? AND tenant_id = ? AND matched = ?", connectionID, tenantID, false).
		Order("date ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return toTransactionEntities(models), nil
}

// ListByConnection retrieves every transaction of a connection, newest first.
func (r *bankTransactionRepository) ListByConnection(ctx context.Context, connectionID, tenantID uuid.UUID) ([]*entity.BankTransaction, error) {
	var models []model.BankTransactionModel

	result := r.db.WithContext(ctx).
		Where("connection_id = ? AND tenant_id = ?", connectionID, tenantID).
		Order("date DESC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return toTransactionEntities(models), nil
}

// CommitMatch links the transaction to the invoice and marks the invoice PAID in one transaction.
func (r *bankTransactionRepository) CommitMatch(ctx context.Context, match adapter.MatchCommit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BankTransactionModel{}).
			Where("id = ? AND tenant_id = ? AND matched = ?", match.TransactionID, match.TenantID, false).
			Updates(map[string]interface{}{
				"matched":         true,
				"matched_to_id":   match.InvoiceID,
				"matched_to_type": entity.MatchTargetInvoice,
				"matched_at":      match.MatchedAt.UTC(),
				"updated_at":      time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.BankTransactionModel{}).
				Where("id = ? AND tenant_id = ?", match.TransactionID, match.TenantID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerror.ErrTransactionNotFound
			}
			return domainerror.ErrTransactionAlreadyMatched
		}

		result = tx.Model(&model.InvoiceModel{}).
			Where("id = ? AND tenant_id = ? AND status IN ?", match.InvoiceID, match.TenantID, payableStatuses()).
			Updates(map[string]interface{}{
				"status":     string(entity.InvoiceStatusPaid),
				"paid_at":    match.PaidAt.UTC(),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvoiceNotPayable
		}

		return nil
	})
}

// transactionStatsRow is the grouped aggregation row.
type transactionStatsRow struct {
	Matched bool
	Count   int
	Total   decimal.NullDecimal
}

// GetStats aggregates counts and amounts grouped by matched state.
func (r *bankTransactionRepository) GetStats(ctx context.Context, connectionID, tenantID uuid.UUID) (*adapter.TransactionStatsData, error) {
	var rows []transactionStatsRow

	result := r.db.WithContext(ctx).
		Model(&model.BankTransactionModel{}).
		Select("matched, COUNT(*) AS count, SUM(amount) AS total").
		Where("connection_id = ? AND tenant_id = ?", connectionID, tenantID).
		Group("matched").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	stats := &adapter.TransactionStatsData{
		MatchedAmount:   decimal.Zero,
		UnmatchedAmount: decimal.Zero,
	}
	for _, row := range rows {
		total := decimal.Zero
		if row.Total.Valid {
			total = row.Total.Decimal
		}
		if row.Matched {
			stats.MatchedCount = row.Count
			stats.MatchedAmount = total
		} else {
			stats.UnmatchedCount = row.Count
			stats.UnmatchedAmount = total
		}
	}

	return stats, nil
}

// ListConnectionIDs retrieves the distinct bank connections of a tenant.
func (r *bankTransactionRepository) ListConnectionIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	result := r.db.WithContext(ctx).
		Model(&model.BankTransactionModel{}).
		Where("tenant_id = ?", tenantID).
		Distinct("connection_id").
		Order("connection_id").
		Pluck("connection_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

// ListTenantIDsWithUnmatched retrieves tenants that have unmatched credit transactions.
func (r *bankTransactionRepository) ListTenantIDsWithUnmatched(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	result := r.db.WithContext(ctx).
		Model(&model.BankTransactionModel{}).
		Where("matched = ? AND direction = ?", false, string(entity.TransactionDirectionCredit)).
		Distinct("tenant_id").
		Order("tenant_id").
		Pluck("tenant_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func toTransactionEntities(models []model.BankTransactionModel) []*entity.BankTransaction {
	transactions := make([]*entity.BankTransaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions
}

func payableStatuses() []string {
	return []string{string(entity.InvoiceStatusSent), string(entity.InvoiceStatusUnpaid)}
}
