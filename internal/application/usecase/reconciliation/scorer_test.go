package reconciliation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/receivables/internal/domain/entity"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

func newCredit(amount, description string, date time.Time) *entity.BankTransaction {
	return entity.NewBankTransaction(
		uuid.New(), uuid.New(),
		decimal.RequireFromString(amount), description, date,
		entity.TransactionDirectionCredit,
	)
}

func newInvoice(number string, totalCents int64, createdAt time.Time) *entity.Invoice {
	inv := entity.NewInvoice(uuid.New(), nil, number, totalCents, "USD")
	inv.CreatedAt = createdAt
	return inv
}

func TestMatchScorer_Score(t *testing.T) {
	scorer := NewMatchScorer(valueobject.DefaultMatchCriteria())
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		amount      string
		description string
		number      string
		totalCents  int64
		expected    float64
	}{
		{"amount and reference", "500.00", "Payment INV-1001", "INV-1001", 50000, 0.8},
		{"amount only", "500.00", "Bank transfer", "INV-1001", 50000, 0.5},
		{"amount within tolerance", "499.99", "Bank transfer", "INV-1001", 50000, 0.5},
		{"amount within double tolerance", "499.98", "Bank transfer", "INV-1001", 50000, 0.25},
		{"close amount and reference", "500.02", "INV-1001", "INV-1001", 50000, 0.55},
		{"reference only", "12.00", "Payment INV-1001", "INV-1001", 50000, 0.3},
		{"reference is case sensitive", "12.00", "payment inv-1001", "INV-1001", 50000, 0},
		{"empty number never matches", "12.00", "Payment", "", 50000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := newCredit(tt.amount, tt.description, date)
			inv := newInvoice(tt.number, tt.totalCents, date)

			assert.InDelta(t, tt.expected, scorer.Score(txn, inv), 1e-9)
		})
	}
}

func TestMatchScorer_BestKeepsFirstOnTie(t *testing.T) {
	scorer := NewMatchScorer(valueobject.DefaultMatchCriteria())
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	txn := newCredit("100.00", "Transfer", date)

	first := newInvoice("INV-1", 10000, date)
	second := newInvoice("INV-2", 10000, date)
	weaker := newInvoice("INV-3", 9990, date)

	best, score, ok := scorer.Best(txn, []*entity.Invoice{weaker, first, second})

	assert.True(t, ok)
	assert.Equal(t, first.ID, best.ID)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestMatchScorer_BestEmpty(t *testing.T) {
	scorer := NewMatchScorer(valueobject.DefaultMatchCriteria())

	best, _, ok := scorer.Best(newCredit("1.00", "x", time.Now()), nil)

	assert.False(t, ok)
	assert.Nil(t, best)
}

func TestMatchScorer_AcceptsIsStrict(t *testing.T) {
	scorer := NewMatchScorer(valueobject.DefaultMatchCriteria())

	assert.False(t, scorer.Accepts(0.5))
	assert.True(t, scorer.Accepts(0.55))
	assert.True(t, scorer.Accepts(0.8))
}
