package reconciliation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/application/adapter/mocks"
	"github.com/ledgerline/receivables/internal/domain/entity"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

func TestFindDuplicates(t *testing.T) {
	base := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	t.Run("flags same amount with similar description two hours apart", func(t *testing.T) {
		later := newCredit("100.00", "Invoice payment", base.Add(2*time.Hour))
		earlier := newCredit("100.00", "Invoice paymnt", base)

		records := runFindDuplicates(t, []*entity.BankTransaction{later, earlier})

		require.Len(t, records, 1)
		assert.Equal(t, later.ID, records[0].ID)
		assert.Equal(t, "100.00", records[0].Amount)
		assert.Equal(t, "Invoice payment", records[0].Description)
		assert.Equal(t, []uuid.UUID{earlier.ID}, records[0].Duplicates)
	})

	t.Run("different amounts never pair", func(t *testing.T) {
		a := newCredit("100.00", "Invoice payment", base)
		b := newCredit("100.01", "Invoice payment", base)

		assert.Empty(t, runFindDuplicates(t, []*entity.BankTransaction{a, b}))
	})

	t.Run("window is exclusive", func(t *testing.T) {
		a := newCredit("50.00", "Rent", base.Add(24*time.Hour))
		b := newCredit("50.00", "Rent", base)

		assert.Empty(t, runFindDuplicates(t, []*entity.BankTransaction{a, b}))
	})

	t.Run("dissimilar descriptions never pair", func(t *testing.T) {
		a := newCredit("50.00", "Stripe payout", base)
		b := newCredit("50.00", "ATM withdrawal", base)

		assert.Empty(t, runFindDuplicates(t, []*entity.BankTransaction{a, b}))
	})

	t.Run("one record per pair in scan order", func(t *testing.T) {
		a := newCredit("10.00", "Coffee", base.Add(3*time.Hour))
		x := newCredit("99.00", "Other", base.Add(2*time.Hour))
		b := newCredit("10.00", "Coffee", base.Add(time.Hour))
		c := newCredit("10.00", "Coffee", base)

		records := runFindDuplicates(t, []*entity.BankTransaction{a, x, b, c})

		require.Len(t, records, 3)
		assert.Equal(t, a.ID, records[0].ID)
		assert.Equal(t, []uuid.UUID{b.ID}, records[0].Duplicates)
		assert.Equal(t, a.ID, records[1].ID)
		assert.Equal(t, []uuid.UUID{c.ID}, records[1].Duplicates)
		assert.Equal(t, b.ID, records[2].ID)
		assert.Equal(t, []uuid.UUID{c.ID}, records[2].Duplicates)
	})
}

func TestFindDuplicates_CustomCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBankTransactionRepository(ctrl)
	base := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	a := newCredit("50.00", "Rent", base.Add(30*time.Hour))
	b := newCredit("50.00", "Rent", base)
	repo.EXPECT().ListByConnection(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*entity.BankTransaction{a, b}, nil)

	criteria := valueobject.DuplicateCriteria{SimilarityThreshold: 0.8, Window: 48 * time.Hour}
	records, err := NewFindDuplicatesUseCase(repo).Execute(context.Background(), FindDuplicatesInput{
		ConnectionID: uuid.New(),
		TenantID:     uuid.New(),
		Criteria:     &criteria,
	})

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFindDuplicates_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBankTransactionRepository(ctrl)
	repo.EXPECT().ListByConnection(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := NewFindDuplicatesUseCase(repo).Execute(context.Background(), FindDuplicatesInput{})

	assert.ErrorContains(t, err, "timeout")
}

func runFindDuplicates(t *testing.T, txns []*entity.BankTransaction) []valueobject.DuplicateRecord {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBankTransactionRepository(ctrl)
	connectionID, tenantID := uuid.New(), uuid.New()
	repo.EXPECT().ListByConnection(gomock.Any(), connectionID, tenantID).Return(txns, nil)

	records, err := NewFindDuplicatesUseCase(repo).Execute(context.Background(), FindDuplicatesInput{
		ConnectionID: connectionID,
		TenantID:     tenantID,
	})
	require.NoError(t, err)
	return records
}
