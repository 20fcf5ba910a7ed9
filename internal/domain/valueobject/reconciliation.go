// Package valueobject contains domain value objects for the receivables system.
package valueobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchCandidate pairs one transaction with one invoice during a single pass.
type MatchCandidate struct {
	TransactionID uuid.UUID
	InvoiceID     uuid.UUID
	InvoiceNumber string
	Score         float64 // 0-0.8 with the default weights
}

// ReconciliationResult represents the result of a reconciliation pass.
type ReconciliationResult struct {
	Matched   int
	Attempted int
	Errors    []string
	Matches   []MatchCandidate
}

// DuplicateRecord is one flagged pair: the earlier-indexed transaction and its duplicates.
type DuplicateRecord struct {
	ID          uuid.UUID
	Amount      string
	Date        time.Time
	Description string
	Duplicates  []uuid.UUID
}

// TransactionStats contains transaction counts and totals for a connection.
type TransactionStats struct {
	Total       int
	Matched     int
	Unmatched   int
	TotalAmount string // Fixed to 2 decimal places
}

// InvoiceStats contains invoice counts and totals for a tenant.
type InvoiceStats struct {
	Total       int
	TotalAmount string // Major units, fixed to 2 decimal places
}

// MatchingStats contains summary statistics for reconciliation.
type MatchingStats struct {
	Transactions TransactionStats
	Invoices     InvoiceStats
}

// FormatAmount renders a money total with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
