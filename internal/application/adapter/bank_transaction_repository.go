// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// BankTransactionRepository defines the interface for bank transaction persistence operations.
//
//go:generate mockgen -destination=mocks/mock_bank_transaction_repository.go -package=mocks -source=bank_transaction_repository.go BankTransactionRepository
type BankTransactionRepository interface {
	// ListUnmatched retrieves transactions of a connection that have not been matched yet.
	ListUnmatched(ctx context.Context, connectionID, tenantID uuid.UUID) ([]*entity.BankTransaction, error)

	// ListByConnection retrieves every transaction of a connection, newest first.
	ListByConnection(ctx context.Context, connectionID, tenantID uuid.UUID) ([]*entity.BankTransaction, error)

	// CommitMatch links a transaction to an invoice and marks the invoice paid.
	// Returns ErrTransactionAlreadyMatched if the transaction was matched concurrently.
	CommitMatch(ctx context.Context, match MatchCommit) error

	// GetStats aggregates transaction counts and totals grouped by matched state.
	GetStats(ctx context.Context, connectionID, tenantID uuid.UUID) (*TransactionStatsData, error)

	// ListConnectionIDs retrieves the distinct bank connections of a tenant.
	ListConnectionIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error)

	// ListTenantIDsWithUnmatched retrieves tenants that have unmatched credit transactions.
	ListTenantIDsWithUnmatched(ctx context.Context) ([]uuid.UUID, error)
}

// MatchCommit describes a match to persist.
type MatchCommit struct {
	TransactionID uuid.UUID
	InvoiceID     uuid.UUID
	TenantID      uuid.UUID
	MatchedAt     time.Time
	PaidAt        time.Time
}

// TransactionStatsData contains aggregated transaction statistics.
type TransactionStatsData struct {
	MatchedCount    int
	UnmatchedCount  int
	MatchedAmount   decimal.Decimal
	UnmatchedAmount decimal.Decimal
}
