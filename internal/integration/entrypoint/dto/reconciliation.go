// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// ReconcileRequest optionally overrides the matching criteria for one pass.
type ReconcileRequest struct {
	AmountTolerance     *string  `json:"amount_tolerance,omitempty"`
	DateWindowDays      *int     `json:"date_window_days,omitempty"`
	AcceptanceThreshold *float64 `json:"acceptance_threshold,omitempty"`
}

// Apply overlays the request onto base. An unparsable tolerance is reported as an error.
func (r ReconcileRequest) Apply(base valueobject.MatchCriteria) (valueobject.MatchCriteria, error) {
	if r.AmountTolerance != nil {
		tolerance, err := decimal.NewFromString(*r.AmountTolerance)
		if err != nil {
			return base, err
		}
		base.AmountTolerance = tolerance
	}
	if r.DateWindowDays != nil {
		base.DateWindowDays = *r.DateWindowDays
	}
	if r.AcceptanceThreshold != nil {
		base.AcceptanceThreshold = *r.AcceptanceThreshold
	}
	return base, nil
}

// MatchDTO represents one committed transaction-to-invoice match.
type MatchDTO struct {
	TransactionID string  `json:"transaction_id"`
	InvoiceID     string  `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Score         float64 `json:"score"`
}

// ReconcileResponse represents the result of a reconciliation pass.
type ReconcileResponse struct {
	Matched   int        `json:"matched"`
	Attempted int        `json:"attempted"`
	Errors    []string   `json:"errors"`
	Matches   []MatchDTO `json:"matches"`
}

// DuplicateDTO represents a transaction flagged with its likely duplicates.
type DuplicateDTO struct {
	ID          string   `json:"id"`
	Amount      string   `json:"amount"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Duplicates  []string `json:"duplicates"`
}

// DuplicatesResponse represents the duplicate scan result.
type DuplicatesResponse struct {
	Duplicates []DuplicateDTO `json:"duplicates"`
}

// TransactionStatsDTO contains transaction counts and totals.
type TransactionStatsDTO struct {
	Total       int    `json:"total"`
	Matched     int    `json:"matched"`
	Unmatched   int    `json:"unmatched"`
	TotalAmount string `json:"total_amount"`
}

// InvoiceStatsDTO contains invoice counts and totals.
type InvoiceStatsDTO struct {
	Total       int    `json:"total"`
	TotalAmount string `json:"total_amount"`
}

// MatchingStatsResponse represents reconciliation summary statistics.
type MatchingStatsResponse struct {
	Transactions TransactionStatsDTO `json:"transactions"`
	Invoices     InvoiceStatsDTO     `json:"invoices"`
}

// ToReconcileResponse converts a domain result to a response DTO.
func ToReconcileResponse(result *valueobject.ReconciliationResult) ReconcileResponse {
	response := ReconcileResponse{
		Matched:   result.Matched,
		Attempted: result.Attempted,
		Errors:    result.Errors,
		Matches:   make([]MatchDTO, 0, len(result.Matches)),
	}
	if response.Errors == nil {
		response.Errors = []string{}
	}
	for _, m := range result.Matches {
		response.Matches = append(response.Matches, MatchDTO{
			TransactionID: m.TransactionID.String(),
			InvoiceID:     m.InvoiceID.String(),
			InvoiceNumber: m.InvoiceNumber,
			Score:         m.Score,
		})
	}
	return response
}

// ToDuplicatesResponse converts duplicate records to a response DTO.
func ToDuplicatesResponse(records []valueobject.DuplicateRecord) DuplicatesResponse {
	response := DuplicatesResponse{Duplicates: make([]DuplicateDTO, 0, len(records))}
	for _, r := range records {
		dups := make([]string, 0, len(r.Duplicates))
		for _, id := range r.Duplicates {
			dups = append(dups, id.String())
		}
		response.Duplicates = append(response.Duplicates, DuplicateDTO{
			ID:          r.ID.String(),
			Amount:      r.Amount,
			Date:        r.Date.UTC().Format(time.RFC3339),
			Description: r.Description,
			Duplicates:  dups,
		})
	}
	return response
}

// ToMatchingStatsResponse converts matching stats to a response DTO.
func ToMatchingStatsResponse(stats *valueobject.MatchingStats) MatchingStatsResponse {
	return MatchingStatsResponse{
		Transactions: TransactionStatsDTO{
			Total:       stats.Transactions.Total,
			Matched:     stats.Transactions.Matched,
			Unmatched:   stats.Transactions.Unmatched,
			TotalAmount: stats.Transactions.TotalAmount,
		},
		Invoices: InvoiceStatsDTO{
			Total:       stats.Invoices.Total,
			TotalAmount: stats.Invoices.TotalAmount,
		},
	}
}
