// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentAttemptStatus represents the outcome of an off-session retry.
type PaymentAttemptStatus string

const (
	PaymentAttemptSucceeded PaymentAttemptStatus = "succeeded"
	PaymentAttemptFailed    PaymentAttemptStatus = "failed"
)

// PaymentAttempt records a single dunning retry against an invoice.
type PaymentAttempt struct {
	ID              uuid.UUID
	InvoiceID       uuid.UUID
	TenantID        uuid.UUID
	PaymentMethodID uuid.UUID
	AttemptNumber   int
	RetryInterval   int // Schedule offset (days) the attempt was made for
	Status          PaymentAttemptStatus
	GatewayRef      string
	Error           string
	AttemptedAt     time.Time
}

// NewPaymentAttempt creates a PaymentAttempt for the given invoice and schedule slot.
func NewPaymentAttempt(
	invoiceID uuid.UUID,
	tenantID uuid.UUID,
	paymentMethodID uuid.UUID,
	attemptNumber int,
	retryInterval int,
	attemptedAt time.Time,
) *PaymentAttempt {
	return &PaymentAttempt{
		ID:              uuid.New(),
		InvoiceID:       invoiceID,
		TenantID:        tenantID,
		PaymentMethodID: paymentMethodID,
		AttemptNumber:   attemptNumber,
		RetryInterval:   retryInterval,
		Status:          PaymentAttemptFailed,
		AttemptedAt:     attemptedAt,
	}
}

// MarkSucceeded records a gateway-confirmed charge.
func (a *PaymentAttempt) MarkSucceeded(gatewayRef string) {
	a.Status = PaymentAttemptSucceeded
	a.GatewayRef = gatewayRef
	a.Error = ""
}

// MarkFailed records a decline or gateway error.
func (a *PaymentAttempt) MarkFailed(gatewayRef, reason string) {
	a.Status = PaymentAttemptFailed
	a.GatewayRef = gatewayRef
	a.Error = reason
}
