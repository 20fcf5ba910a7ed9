package reconciliation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// FindDuplicatesInput represents the input for a duplicate scan.
type FindDuplicatesInput struct {
	ConnectionID uuid.UUID
	TenantID     uuid.UUID
	Criteria     *valueobject.DuplicateCriteria // nil uses the defaults
}

// FindDuplicatesUseCase reports likely duplicate transactions. It never mutates them.
type FindDuplicatesUseCase struct {
	transactionRepo adapter.BankTransactionRepository
}

// NewFindDuplicatesUseCase creates a new FindDuplicatesUseCase instance.
func NewFindDuplicatesUseCase(transactionRepo adapter.BankTransactionRepository) *FindDuplicatesUseCase {
	return &FindDuplicatesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute scans every transaction of the connection, newest first.
//
// A pair (i, j) with i < j is flagged when the amounts are exactly equal, the
// description similarity exceeds the threshold, and the dates are closer than
// the window. Each pair yields one record keyed by transaction i.
func (uc *FindDuplicatesUseCase) Execute(ctx context.Context, input FindDuplicatesInput) ([]valueobject.DuplicateRecord, error) {
	criteria := valueobject.DefaultDuplicateCriteria()
	if input.Criteria != nil {
		criteria = *input.Criteria
	}

	transactions, err := uc.transactionRepo.ListByConnection(ctx, input.ConnectionID, input.TenantID)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeFetchTransactionsFailed,
			"failed to fetch transactions",
			err,
		)
	}

	// Only equal amounts can pair, so compare within amount buckets.
	// Indices stay ascending inside each bucket to keep the scan order.
	buckets := make(map[string][]int)
	for i, txn := range transactions {
		key := txn.Amount.String()
		buckets[key] = append(buckets[key], i)
	}

	duplicates := []valueobject.DuplicateRecord{}
	for i, txn := range transactions {
		if err := ctx.Err(); err != nil {
			return duplicates, err
		}

		for _, j := range buckets[txn.Amount.String()] {
			if j <= i {
				continue
			}
			other := transactions[j]
			if !isDuplicate(txn, other, criteria) {
				continue
			}
			duplicates = append(duplicates, valueobject.DuplicateRecord{
				ID:          txn.ID,
				Amount:      valueobject.FormatAmount(txn.Amount),
				Date:        txn.Date,
				Description: txn.Description,
				Duplicates:  []uuid.UUID{other.ID},
			})
		}
	}

	slog.Info("Duplicate scan completed",
		"tenant_id", input.TenantID.String(),
		"connection_id", input.ConnectionID.String(),
		"transactions", len(transactions),
		"duplicates", len(duplicates),
	)

	return duplicates, nil
}

func isDuplicate(a, b *entity.BankTransaction, criteria valueobject.DuplicateCriteria) bool {
	gap := a.Date.Sub(b.Date)
	if gap < 0 {
		gap = -gap
	}
	if gap >= criteria.Window {
		return false
	}
	return Similarity(a.Description, b.Description) > criteria.SimilarityThreshold
}
