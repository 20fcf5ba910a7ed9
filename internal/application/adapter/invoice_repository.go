// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/entity"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// InvoiceRepository defines the interface for invoice persistence operations.
//
//go:generate mockgen -destination=mocks/mock_invoice_repository.go -package=mocks -source=invoice_repository.go InvoiceRepository
type InvoiceRepository interface {
	// FindMatchCandidates retrieves SENT or UNPAID invoices created within the window.
	FindMatchCandidates(ctx context.Context, tenantID uuid.UUID, window valueobject.DateRange) ([]*entity.Invoice, error)

	// ListUnpaid retrieves UNPAID invoices of a tenant with their client loaded.
	ListUnpaid(ctx context.Context, tenantID uuid.UUID) ([]*entity.Invoice, error)

	// GetByID retrieves an invoice by ID. Returns ErrInvoiceNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// MarkPaid transitions an invoice to PAID.
	MarkPaid(ctx context.Context, tenantID, id uuid.UUID, paidAt time.Time) error

	// MarkEscalated stamps the first escalation time. Status is unchanged.
	MarkEscalated(ctx context.Context, tenantID, id uuid.UUID, escalatedAt time.Time) error

	// GetStats aggregates invoice count and total for a tenant.
	GetStats(ctx context.Context, tenantID uuid.UUID) (*InvoiceStatsData, error)

	// ListTenantIDsWithUnpaid retrieves tenants that currently have UNPAID invoices.
	ListTenantIDsWithUnpaid(ctx context.Context) ([]uuid.UUID, error)
}

// InvoiceStatsData contains aggregated invoice statistics.
type InvoiceStatsData struct {
	Count      int
	TotalCents int64
}
