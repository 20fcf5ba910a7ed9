package reconciliation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// MatchTransactionsInput represents the input for a reconciliation pass.
type MatchTransactionsInput struct {
	ConnectionID uuid.UUID
	TenantID     uuid.UUID
	Criteria     valueobject.MatchCriteria // Zero fields fall back to defaults
}

// MatchTransactionsUseCase matches unmatched credit transactions to open invoices.
type MatchTransactionsUseCase struct {
	transactionRepo adapter.BankTransactionRepository
	invoiceRepo     adapter.InvoiceRepository
	audit           adapter.AuditLogger
	clock           adapter.Clock
}

// NewMatchTransactionsUseCase creates a new MatchTransactionsUseCase instance.
func NewMatchTransactionsUseCase(
	transactionRepo adapter.BankTransactionRepository,
	invoiceRepo adapter.InvoiceRepository,
	audit adapter.AuditLogger,
	clock adapter.Clock,
) *MatchTransactionsUseCase {
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	return &MatchTransactionsUseCase{
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		audit:           adapter.AuditOrNop(audit),
		clock:           clock,
	}
}

// Execute runs one reconciliation pass over the connection.
// If ctx is cancelled mid-pass, the partial result is returned with ctx.Err().
func (uc *MatchTransactionsUseCase) Execute(ctx context.Context, input MatchTransactionsInput) (*valueobject.ReconciliationResult, error) {
	if input.ConnectionID == uuid.Nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidConnectionID,
			"connection ID is required",
			domainerror.ErrInvalidConnectionID,
		)
	}

	transactions, err := uc.transactionRepo.ListUnmatched(ctx, input.ConnectionID, input.TenantID)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeFetchTransactionsFailed,
			"failed to fetch unmatched transactions",
			err,
		)
	}

	logger := slog.With(
		"tenant_id", input.TenantID.String(),
		"connection_id", input.ConnectionID.String(),
	)
	logger.Info("Attempting to match transactions", "count", len(transactions))

	scorer := NewMatchScorer(input.Criteria)
	criteria := input.Criteria.WithDefaults()
	claimed := make(map[uuid.UUID]struct{})
	result := &valueobject.ReconciliationResult{Errors: []string{}}

	for _, txn := range transactions {
		if err := ctx.Err(); err != nil {
			logger.Warn("Reconciliation cancelled", "matched", result.Matched, "attempted", result.Attempted)
			return result, err
		}

		result.Attempted++

		// Only incoming payments can settle an invoice
		if !txn.IsCredit() {
			continue
		}

		match, err := uc.matchTransaction(ctx, txn, input.TenantID, scorer, criteria, claimed)
		if err != nil {
			msg := fmt.Sprintf("Failed to match transaction %s: %v", txn.ID, err)
			result.Errors = append(result.Errors, msg)
			logger.Error("Failed to match transaction", "transaction_id", txn.ID.String(), "error", err)
			uc.audit.Record(ctx, adapter.AuditEntry{
				Level:      slog.LevelError,
				Action:     "reconciliation.match_failed",
				TenantID:   input.TenantID,
				EntityType: "bank_transaction",
				EntityID:   txn.ID,
				Message:    msg,
			})
			continue
		}
		if match == nil {
			continue
		}

		claimed[match.InvoiceID] = struct{}{}
		result.Matched++
		result.Matches = append(result.Matches, *match)

		logger.Debug("Matched transaction to invoice",
			"transaction_id", txn.ID.String(),
			"invoice_id", match.InvoiceID.String(),
			"invoice_number", match.InvoiceNumber,
			"score", match.Score,
		)
	}

	logger.Info("Reconciliation completed",
		"matched", result.Matched,
		"attempted", result.Attempted,
		"errors", len(result.Errors),
	)

	return result, nil
}

// matchTransaction finds and commits the best candidate for one transaction.
// Returns nil without error when no candidate clears the threshold.
func (uc *MatchTransactionsUseCase) matchTransaction(
	ctx context.Context,
	txn *entity.BankTransaction,
	tenantID uuid.UUID,
	scorer *MatchScorer,
	criteria valueobject.MatchCriteria,
	claimed map[uuid.UUID]struct{},
) (*valueobject.MatchCandidate, error) {
	invoices, err := uc.invoiceRepo.FindMatchCandidates(ctx, tenantID, criteria.DateWindow(txn.Date))
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeFetchInvoicesFailed,
			"failed to fetch candidate invoices",
			err,
		)
	}

	available := make([]*entity.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		if _, taken := claimed[invoice.ID]; !taken {
			available = append(available, invoice)
		}
	}

	best, score, ok := scorer.Best(txn, available)
	if !ok || !scorer.Accepts(score) {
		return nil, nil
	}

	err = uc.transactionRepo.CommitMatch(ctx, adapter.MatchCommit{
		TransactionID: txn.ID,
		InvoiceID:     best.ID,
		TenantID:      tenantID,
		MatchedAt:     uc.clock.Now(),
		PaidAt:        txn.Date,
	})
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeCommitMatchFailed,
			fmt.Sprintf("failed to commit match to invoice %s", best.ID),
			err,
		)
	}

	return &valueobject.MatchCandidate{
		TransactionID: txn.ID,
		InvoiceID:     best.ID,
		InvoiceNumber: best.Number,
		Score:         score,
	}, nil
}
