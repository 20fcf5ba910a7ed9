// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "DRAFT"
	InvoiceStatusSent   InvoiceStatus = "SENT"
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
	InvoiceStatusVoid   InvoiceStatus = "VOID"
)

// Client is the customer billed by an invoice.
type Client struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Email    string
	Name     string
}

// Invoice represents a tenant invoice awaiting or having received payment.
type Invoice struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	ClientID    *uuid.UUID
	Client      *Client
	Number      string
	TotalCents  int64
	Currency    string
	Status      InvoiceStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      *time.Time
	EscalatedAt *time.Time
}

// NewInvoice creates a new unpaid Invoice entity.
func NewInvoice(tenantID uuid.UUID, clientID *uuid.UUID, number string, totalCents int64, currency string) *Invoice {
	now := time.Now().UTC()

	return &Invoice{
		ID:         uuid.New(),
		TenantID:   tenantID,
		ClientID:   clientID,
		Number:     number,
		TotalCents: totalCents,
		Currency:   currency,
		Status:     InvoiceStatusUnpaid,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Amount returns the invoice total in major units.
func (i *Invoice) Amount() decimal.Decimal {
	return decimal.New(i.TotalCents, -2)
}

// AgeInDays returns the whole days elapsed since the invoice was created.
func (i *Invoice) AgeInDays(now time.Time) int {
	return DaysBetween(i.CreatedAt, now)
}

// IsEscalated reports whether the invoice has been escalated at least once.
func (i *Invoice) IsEscalated() bool {
	return i.EscalatedAt != nil
}

// DaysBetween returns floor((to - from) / 24h).
func DaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
