// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// DunningNotice carries the data needed to tell a client about an unpaid invoice.
type DunningNotice struct {
	TenantID         uuid.UUID
	InvoiceID        uuid.UUID
	InvoiceNumber    string
	ClientID         uuid.UUID
	ClientEmail      string
	ClientName       string
	AmountMinorUnits int64
	Currency         string
	DaysOverdue      int
	Reason           valueobject.NotificationReason
	Channels         []string
}

// DunningNotifier defines the best-effort outbound notification interface.
//
//go:generate mockgen -destination=mocks/mock_dunning_notifier.go -package=mocks -source=dunning_notifier.go DunningNotifier
type DunningNotifier interface {
	// NotifyPaymentDue tells the client a retry failed or no payment method is on file.
	NotifyPaymentDue(ctx context.Context, notice DunningNotice) error

	// NotifyEscalated tells the client the invoice has been escalated.
	NotifyEscalated(ctx context.Context, notice DunningNotice) error
}
