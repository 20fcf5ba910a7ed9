package dunning

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// GetInvoiceAgingUseCase buckets a tenant's UNPAID invoices by age.
type GetInvoiceAgingUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	clock       adapter.Clock
}

// NewGetInvoiceAgingUseCase creates a new GetInvoiceAgingUseCase instance.
func NewGetInvoiceAgingUseCase(invoiceRepo adapter.InvoiceRepository, clock adapter.Clock) *GetInvoiceAgingUseCase {
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	return &GetInvoiceAgingUseCase{
		invoiceRepo: invoiceRepo,
		clock:       clock,
	}
}

// Execute returns the four fixed buckets, rebuilt on every call.
func (uc *GetInvoiceAgingUseCase) Execute(ctx context.Context, tenantID uuid.UUID) ([]valueobject.AgingBucket, error) {
	invoices, err := uc.invoiceRepo.ListUnpaid(ctx, tenantID)
	if err != nil {
		return nil, domainerror.NewDunningError(domainerror.ErrCodeAgingFailed, "failed to fetch unpaid invoices", err)
	}

	now := uc.clock.Now()
	buckets := valueobject.NewAgingBuckets()

	for _, invoice := range invoices {
		days := invoice.AgeInDays(now)
		if days < 0 {
			// Clock skew puts future-dated invoices in Current
			days = 0
		}
		for i := range buckets {
			if buckets[i].Contains(days) {
				buckets[i].Add(invoice.TotalCents)
				break
			}
		}
	}

	return buckets, nil
}
