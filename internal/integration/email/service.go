// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/integration/email/templates"
)

// ChannelEmail is the notification channel served by Notifier.
const ChannelEmail = "email"

// Notifier queues dunning emails for the worker to deliver.
type Notifier struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewNotifier creates a new dunning email notifier.
func NewNotifier(queue adapter.EmailQueueRepository, appBaseURL string) *Notifier {
	return &Notifier{
		queue:      queue,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// NotifyPaymentDue queues a reminder that a retry failed or no payment method is on file.
func (n *Notifier) NotifyPaymentDue(ctx context.Context, notice adapter.DunningNotice) error {
	return n.enqueue(ctx, entity.TemplateDunningReminder, notice)
}

// NotifyEscalated queues the escalation notice.
func (n *Notifier) NotifyEscalated(ctx context.Context, notice adapter.DunningNotice) error {
	return n.enqueue(ctx, entity.TemplateInvoiceEscalated, notice)
}

func (n *Notifier) enqueue(ctx context.Context, template entity.EmailTemplateType, notice adapter.DunningNotice) error {
	if notice.ClientEmail == "" || !wantsEmail(notice.Channels) {
		return nil
	}

	data := templates.DunningData{
		ClientName:    notice.ClientName,
		InvoiceNumber: notice.InvoiceNumber,
		Amount:        formatAmount(notice.AmountMinorUnits, notice.Currency),
		DaysOverdue:   strconv.Itoa(notice.DaysOverdue),
		Reason:        string(notice.Reason),
		InvoiceURL:    fmt.Sprintf("%s/invoices/%s", n.appBaseURL, notice.InvoiceID),
	}

	job := entity.NewEmailJob(
		notice.TenantID,
		template,
		notice.ClientEmail,
		notice.ClientName,
		templates.Subject(string(template), data),
		data.Map(),
	)

	if err := n.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s for invoice %s", template, notice.InvoiceNumber),
			err,
		)
	}

	return nil
}

// wantsEmail reports whether email is among the configured channels.
// An empty list means the default channel set, which is email only.
func wantsEmail(channels []string) bool {
	return len(channels) == 0 || slices.Contains(channels, ChannelEmail)
}

func formatAmount(minorUnits int64, currency string) string {
	return fmt.Sprintf("%s %s", decimal.New(minorUnits, -2).StringFixed(2), strings.ToUpper(currency))
}

// Ensure Notifier implements adapter.DunningNotifier.
var _ adapter.DunningNotifier = (*Notifier)(nil)
