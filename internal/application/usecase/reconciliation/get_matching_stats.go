package reconciliation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// GetMatchingStatsInput represents the input for reconciliation statistics.
type GetMatchingStatsInput struct {
	ConnectionID uuid.UUID
	TenantID     uuid.UUID
}

// GetMatchingStatsUseCase summarizes matched and unmatched transactions against tenant invoices.
type GetMatchingStatsUseCase struct {
	transactionRepo adapter.BankTransactionRepository
	invoiceRepo     adapter.InvoiceRepository
}

// NewGetMatchingStatsUseCase creates a new GetMatchingStatsUseCase instance.
func NewGetMatchingStatsUseCase(
	transactionRepo adapter.BankTransactionRepository,
	invoiceRepo adapter.InvoiceRepository,
) *GetMatchingStatsUseCase {
	return &GetMatchingStatsUseCase{
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
	}
}

// Execute returns the statistics for a connection.
func (uc *GetMatchingStatsUseCase) Execute(ctx context.Context, input GetMatchingStatsInput) (*valueobject.MatchingStats, error) {
	txnStats, err := uc.transactionRepo.GetStats(ctx, input.ConnectionID, input.TenantID)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeStatsFailed,
			"failed to aggregate transactions",
			err,
		)
	}

	invoiceStats, err := uc.invoiceRepo.GetStats(ctx, input.TenantID)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeStatsFailed,
			"failed to aggregate invoices",
			err,
		)
	}

	return &valueobject.MatchingStats{
		Transactions: valueobject.TransactionStats{
			Total:       txnStats.MatchedCount + txnStats.UnmatchedCount,
			Matched:     txnStats.MatchedCount,
			Unmatched:   txnStats.UnmatchedCount,
			TotalAmount: valueobject.FormatAmount(txnStats.MatchedAmount.Add(txnStats.UnmatchedAmount)),
		},
		Invoices: valueobject.InvoiceStats{
			Total:       invoiceStats.Count,
			TotalAmount: valueobject.FormatAmount(decimal.New(invoiceStats.TotalCents, -2)),
		},
	}, nil
}
