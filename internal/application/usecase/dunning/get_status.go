package dunning

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// DunningStatusOutput describes where an invoice stands in the dunning schedule.
type DunningStatusOutput struct {
	InvoiceID    uuid.UUID
	TenantID     uuid.UUID
	Status       entity.InvoiceStatus
	DaysOverdue  int
	IsEscalated  bool
	NextRetryDue *int
	Attempts     int
	LastRetryAt  *time.Time
	EscalatedAt  *time.Time
}

// GetDunningStatusUseCase reports the dunning state of a single invoice.
type GetDunningStatusUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	attemptRepo adapter.PaymentAttemptRepository
	scheduler   *Scheduler
	clock       adapter.Clock
}

// NewGetDunningStatusUseCase creates a new GetDunningStatusUseCase instance.
func NewGetDunningStatusUseCase(
	invoiceRepo adapter.InvoiceRepository,
	attemptRepo adapter.PaymentAttemptRepository,
	config valueobject.DunningConfig,
	clock adapter.Clock,
) *GetDunningStatusUseCase {
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	return &GetDunningStatusUseCase{
		invoiceRepo: invoiceRepo,
		attemptRepo: attemptRepo,
		scheduler:   NewScheduler(config),
		clock:       clock,
	}
}

// Execute returns the status of the invoice, or a DUN-010002 error when it does not exist.
func (uc *GetDunningStatusUseCase) Execute(ctx context.Context, invoiceID uuid.UUID) (*DunningStatusOutput, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewDunningError(domainerror.ErrCodeInvoiceNotFound, "invoice not found", err)
		}
		return nil, err
	}

	days := invoice.AgeInDays(uc.clock.Now())
	config := uc.scheduler.Config()

	output := &DunningStatusOutput{
		InvoiceID:   invoice.ID,
		TenantID:    invoice.TenantID,
		Status:      invoice.Status,
		IsEscalated: days >= config.EscalationThresholdDays || invoice.IsEscalated(),
		EscalatedAt: invoice.EscalatedAt,
	}
	if invoice.Status == entity.InvoiceStatusUnpaid {
		output.DaysOverdue = days
	}
	if next, ok := uc.scheduler.NextRetryDue(days); ok {
		output.NextRetryDue = &next
	}

	if uc.attemptRepo != nil {
		attempts, err := uc.attemptRepo.ListByInvoice(ctx, invoice.ID)
		if err != nil {
			return nil, err
		}
		output.Attempts = len(attempts)
		if n := len(attempts); n > 0 {
			last := attempts[n-1].AttemptedAt
			output.LastRetryAt = &last
		}
	}

	return output, nil
}
