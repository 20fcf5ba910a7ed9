// Package valueobject contains domain value objects for the receivables system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// Match signal weights. Signals are additive, so the best possible score is 0.8.
const (
	AmountExactWeight = 0.5
	AmountCloseWeight = 0.25
	ReferenceWeight   = 0.3
)

// MatchCriteria contains the configuration for transaction-to-invoice matching.
type MatchCriteria struct {
	// AmountTolerance is the absolute difference, in major units, still treated as an exact amount.
	AmountTolerance decimal.Decimal // 0.01 = 1 cent

	// DateWindowDays bounds invoice creation dates around the transaction date.
	DateWindowDays int // 3 days

	// AcceptanceThreshold must be strictly exceeded for a match to be committed.
	AcceptanceThreshold float64 // 0.5
}

// DefaultMatchCriteria returns the default matching configuration.
func DefaultMatchCriteria() MatchCriteria {
	return MatchCriteria{
		AmountTolerance:     decimal.NewFromFloat(0.01),
		DateWindowDays:      3,
		AcceptanceThreshold: 0.5,
	}
}

// WithDefaults fills zero-valued fields from DefaultMatchCriteria.
func (c MatchCriteria) WithDefaults() MatchCriteria {
	defaults := DefaultMatchCriteria()
	if c.AmountTolerance.IsZero() {
		c.AmountTolerance = defaults.AmountTolerance
	}
	if c.DateWindowDays == 0 {
		c.DateWindowDays = defaults.DateWindowDays
	}
	if c.AcceptanceThreshold == 0 {
		c.AcceptanceThreshold = defaults.AcceptanceThreshold
	}
	return c
}

// DateWindow returns the inclusive invoice creation range for a transaction date.
func (c MatchCriteria) DateWindow(txnDate time.Time) DateRange {
	span := time.Duration(c.DateWindowDays) * 24 * time.Hour
	return DateRange{
		Start: txnDate.Add(-span),
		End:   txnDate.Add(span),
	}
}

// AmountScore scores how closely a transaction amount meets an invoice amount.
func (c MatchCriteria) AmountScore(txnAmount, invoiceAmount decimal.Decimal) float64 {
	diff := txnAmount.Sub(invoiceAmount).Abs()

	if diff.LessThanOrEqual(c.AmountTolerance) {
		return AmountExactWeight
	}
	if diff.LessThanOrEqual(c.AmountTolerance.Mul(decimal.NewFromInt(2))) {
		return AmountCloseWeight
	}
	return 0
}

// DuplicateCriteria contains the configuration for near-duplicate detection.
type DuplicateCriteria struct {
	// SimilarityThreshold must be strictly exceeded by the description similarity.
	SimilarityThreshold float64 // 0.8

	// Window is the exclusive maximum distance between transaction dates.
	Window time.Duration // 24h
}

// DefaultDuplicateCriteria returns the default duplicate detection configuration.
func DefaultDuplicateCriteria() DuplicateCriteria {
	return DuplicateCriteria{
		SimilarityThreshold: 0.8,
		Window:              24 * time.Hour,
	}
}

// DateRange represents an inclusive time range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
