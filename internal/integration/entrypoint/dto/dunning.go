// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledgerline/receivables/internal/application/usecase/dunning"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// DunningResultResponse represents the counters of a dunning pass.
type DunningResultResponse struct {
	Processed int      `json:"processed"`
	Retried   int      `json:"retried"`
	Escalated int      `json:"escalated"`
	Failed    int      `json:"failed"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

// DunningStatusResponse describes the dunning state of an invoice.
type DunningStatusResponse struct {
	InvoiceID    string  `json:"invoice_id"`
	Status       string  `json:"status"`
	DaysOverdue  int     `json:"days_overdue"`
	IsEscalated  bool    `json:"is_escalated"`
	NextRetryDue *int    `json:"next_retry_due"`
	Attempts     int     `json:"attempts"`
	LastRetryAt  *string `json:"last_retry_at"`
	EscalatedAt  *string `json:"escalated_at,omitempty"`
}

// AgingBucketDTO represents one aging report bucket.
type AgingBucketDTO struct {
	Name         string `json:"name"`
	MinDays      int    `json:"min_days"`
	MaxDays      *int   `json:"max_days"`
	InvoiceCount int    `json:"invoice_count"`
	TotalAmount  int64  `json:"total_amount"`
}

// AgingResponse represents the invoice aging report.
type AgingResponse struct {
	Buckets []AgingBucketDTO `json:"buckets"`
}

// ToDunningResultResponse converts a domain result to a response DTO.
func ToDunningResultResponse(result *valueobject.DunningResult) DunningResultResponse {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return DunningResultResponse{
		Processed: result.Processed,
		Retried:   result.Retried,
		Escalated: result.Escalated,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
		Errors:    errs,
	}
}

// ToDunningStatusResponse converts a use case output to a response DTO.
func ToDunningStatusResponse(status *dunning.DunningStatusOutput) DunningStatusResponse {
	return DunningStatusResponse{
		InvoiceID:    status.InvoiceID.String(),
		Status:       string(status.Status),
		DaysOverdue:  status.DaysOverdue,
		IsEscalated:  status.IsEscalated,
		NextRetryDue: status.NextRetryDue,
		Attempts:     status.Attempts,
		LastRetryAt:  formatTime(status.LastRetryAt),
		EscalatedAt:  formatTime(status.EscalatedAt),
	}
}

// ToAgingResponse converts aging buckets to a response DTO. Open-ended buckets have a null max_days.
func ToAgingResponse(buckets []valueobject.AgingBucket) AgingResponse {
	response := AgingResponse{Buckets: make([]AgingBucketDTO, 0, len(buckets))}
	for _, b := range buckets {
		item := AgingBucketDTO{
			Name:         b.Name,
			MinDays:      b.MinDays,
			InvoiceCount: b.InvoiceCount,
			TotalAmount:  b.TotalAmount,
		}
		if !b.OpenEnded {
			maxDays := b.MaxDays
			item.MaxDays = &maxDays
		}
		response.Buckets = append(response.Buckets, item)
	}
	return response
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
