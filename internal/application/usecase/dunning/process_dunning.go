package dunning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// ProcessDunningInput represents the input for a dunning pass.
type ProcessDunningInput struct {
	TenantID uuid.UUID
	Config   valueobject.DunningConfig // Zero fields fall back to defaults
}

// ProcessDunningUseCase drives retries, notifications and escalation for unpaid invoices.
type ProcessDunningUseCase struct {
	invoiceRepo       adapter.InvoiceRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	attemptRepo       adapter.PaymentAttemptRepository
	executor          *PaymentRetryExecutor
	notifier          adapter.DunningNotifier
	audit             adapter.AuditLogger
	clock             adapter.Clock
}

// NewProcessDunningUseCase creates a new ProcessDunningUseCase instance.
// notifier and audit are optional.
func NewProcessDunningUseCase(
	invoiceRepo adapter.InvoiceRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	attemptRepo adapter.PaymentAttemptRepository,
	executor *PaymentRetryExecutor,
	notifier adapter.DunningNotifier,
	audit adapter.AuditLogger,
	clock adapter.Clock,
) *ProcessDunningUseCase {
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	return &ProcessDunningUseCase{
		invoiceRepo:       invoiceRepo,
		paymentMethodRepo: paymentMethodRepo,
		attemptRepo:       attemptRepo,
		executor:          executor,
		notifier:          notifier,
		audit:             adapter.AuditOrNop(audit),
		clock:             clock,
	}
}

// dunningPass carries per-run state.
type dunningPass struct {
	tenantID  uuid.UUID
	now       time.Time
	config    valueobject.DunningConfig
	scheduler *Scheduler
	result    *valueobject.DunningResult
}

// Execute runs one dunning pass over the tenant's UNPAID invoices.
// If ctx is cancelled mid-pass, the partial result is returned with ctx.Err().
func (uc *ProcessDunningUseCase) Execute(ctx context.Context, input ProcessDunningInput) (*valueobject.DunningResult, error) {
	logger := slog.With("tenant_id", input.TenantID.String())

	invoices, err := uc.invoiceRepo.ListUnpaid(ctx, input.TenantID)
	if err != nil {
		logger.Error("Error processing dunning", "error", err)
		return nil, domainerror.NewDunningError(
			domainerror.ErrCodeFetchUnpaidFailed,
			"failed to fetch unpaid invoices",
			err,
		)
	}

	scheduler := NewScheduler(input.Config)
	pass := &dunningPass{
		tenantID:  input.TenantID,
		now:       uc.clock.Now(),
		config:    scheduler.Config(),
		scheduler: scheduler,
		result:    &valueobject.DunningResult{Errors: []string{}},
	}

	for _, invoice := range invoices {
		if err := ctx.Err(); err != nil {
			logger.Warn("Dunning cancelled", "processed", pass.result.Processed)
			return pass.result, domainerror.NewDunningError(
				domainerror.ErrCodeDunningCancelled,
				"dunning pass cancelled",
				err,
			)
		}

		pass.result.Processed++

		if err := uc.processInvoice(ctx, pass, invoice); err != nil {
			pass.result.Failed++
			pass.result.Errors = append(pass.result.Errors,
				fmt.Sprintf("Failed to process invoice %s: %v", invoice.ID, err))
			logger.Error("Error processing dunning for invoice",
				"invoice_id", invoice.ID.String(),
				"error", err,
			)
		}
	}

	logger.Info("Dunning completed",
		"processed", pass.result.Processed,
		"retried", pass.result.Retried,
		"escalated", pass.result.Escalated,
		"failed", pass.result.Failed,
		"skipped", pass.result.Skipped,
	)

	return pass.result, nil
}

func (uc *ProcessDunningUseCase) processInvoice(ctx context.Context, pass *dunningPass, invoice *entity.Invoice) error {
	decision := pass.scheduler.Decide(invoice.CreatedAt, pass.now)

	switch decision.Action {
	case valueobject.DunningActionEscalate:
		if err := uc.escalate(ctx, pass, invoice, decision); err != nil {
			return err
		}
		pass.result.Escalated++
		return nil
	case valueobject.DunningActionRetry:
		if invoice.Client == nil {
			return nil
		}
		return uc.retry(ctx, pass, invoice, decision)
	default:
		return nil
	}
}

// escalate records the escalation. The invoice stays UNPAID; only the first
// escalation stamps escalatedAt and notifies the client.
func (uc *ProcessDunningUseCase) escalate(
	ctx context.Context,
	pass *dunningPass,
	invoice *entity.Invoice,
	decision valueobject.DunningDecision,
) error {
	first := !invoice.IsEscalated()

	slog.Warn("Invoice escalated due to non-payment",
		"invoice_id", invoice.ID.String(),
		"tenant_id", pass.tenantID.String(),
		"days_overdue", decision.DaysSinceCreated,
		"first_escalation", first,
	)
	uc.audit.Record(ctx, adapter.AuditEntry{
		Level:      slog.LevelWarn,
		Action:     "dunning.escalated",
		TenantID:   pass.tenantID,
		EntityType: "invoice",
		EntityID:   invoice.ID,
		Message:    "Invoice escalated due to non-payment",
		Attributes: map[string]any{
			"days_overdue":     decision.DaysSinceCreated,
			"first_escalation": first,
		},
	})

	if !first {
		return nil
	}

	if err := uc.invoiceRepo.MarkEscalated(ctx, pass.tenantID, invoice.ID, pass.now); err != nil {
		return domainerror.NewDunningError(domainerror.ErrCodeUpdateInvoiceFailed, "failed to mark invoice escalated", err)
	}
	escalatedAt := pass.now
	invoice.EscalatedAt = &escalatedAt

	if invoice.Client != nil {
		uc.notify(ctx, pass, invoice, decision, valueobject.ReasonEscalated)
	}
	return nil
}

// retry charges the client's default payment method for the first retry slot
// that has no recorded attempt yet.
func (uc *ProcessDunningUseCase) retry(
	ctx context.Context,
	pass *dunningPass,
	invoice *entity.Invoice,
	decision valueobject.DunningDecision,
) error {
	attempts, err := uc.attemptRepo.ListByInvoice(ctx, invoice.ID)
	if err != nil {
		return fmt.Errorf("list payment attempts: %w", err)
	}

	if prior := succeededAttempt(attempts); prior != nil {
		return uc.settleCharged(ctx, pass, invoice, prior)
	}

	slot, ok := nextSlot(pass.scheduler.RetrySlots(decision.DaysSinceCreated), attempts)
	if !ok || len(attempts) >= pass.config.MaxRetries {
		pass.result.Skipped++
		return nil
	}

	method, err := uc.paymentMethodRepo.FindActiveDefault(ctx, invoice.Client.ID, pass.tenantID)
	if errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
		uc.notify(ctx, pass, invoice, decision, valueobject.ReasonNoPaymentMethod)
		return nil
	}
	if err != nil {
		return fmt.Errorf("find payment method: %w", err)
	}

	attempt := entity.NewPaymentAttempt(invoice.ID, pass.tenantID, method.ID, len(attempts)+1, slot, pass.now)
	outcome := uc.executor.Retry(ctx, RetryPaymentInput{
		InvoiceID:          invoice.ID,
		PaymentMethodToken: method.GatewayToken,
		CustomerRef:        method.CustomerRef,
		AmountMinorUnits:   invoice.TotalCents,
		Currency:           invoice.Currency,
		AttemptNumber:      attempt.AttemptNumber,
	})

	if !outcome.Succeeded {
		attempt.MarkFailed(outcome.GatewayRef, outcome.Error)
		uc.recordAttempt(ctx, pass, attempt)
		pass.result.Failed++
		uc.notify(ctx, pass, invoice, decision, valueobject.ReasonPaymentFailed)
		return nil
	}

	attempt.MarkSucceeded(outcome.GatewayRef)
	uc.recordAttempt(ctx, pass, attempt)

	if err := uc.invoiceRepo.MarkPaid(ctx, pass.tenantID, invoice.ID, pass.now); err != nil {
		return domainerror.NewDunningError(
			domainerror.ErrCodeUpdateInvoiceFailed,
			fmt.Sprintf("failed to mark invoice paid after charge %s", outcome.GatewayRef),
			err,
		)
	}
	pass.result.Retried++
	return nil
}

// settleCharged finishes an invoice whose charge already went through but was
// never marked paid. The customer is not charged again.
func (uc *ProcessDunningUseCase) settleCharged(
	ctx context.Context,
	pass *dunningPass,
	invoice *entity.Invoice,
	prior *entity.PaymentAttempt,
) error {
	slog.Warn("Invoice has a succeeded charge but is still unpaid, marking paid",
		"invoice_id", invoice.ID.String(),
		"gateway_ref", prior.GatewayRef,
	)
	if err := uc.invoiceRepo.MarkPaid(ctx, pass.tenantID, invoice.ID, pass.now); err != nil {
		return domainerror.NewDunningError(
			domainerror.ErrCodeUpdateInvoiceFailed,
			fmt.Sprintf("failed to mark invoice paid after charge %s", prior.GatewayRef),
			err,
		)
	}
	pass.result.Retried++
	return nil
}

func succeededAttempt(attempts []*entity.PaymentAttempt) *entity.PaymentAttempt {
	for _, a := range attempts {
		if a.Status == entity.PaymentAttemptSucceeded {
			return a
		}
	}
	return nil
}

// recordAttempt writes the ledger entry. A ledger failure is reported but does
// not change the retry outcome.
func (uc *ProcessDunningUseCase) recordAttempt(ctx context.Context, pass *dunningPass, attempt *entity.PaymentAttempt) {
	if err := uc.attemptRepo.Create(ctx, attempt); err != nil {
		pass.result.Errors = append(pass.result.Errors,
			fmt.Sprintf("Failed to record payment attempt for invoice %s: %v", attempt.InvoiceID, err))
		slog.Warn("Failed to record payment attempt",
			"invoice_id", attempt.InvoiceID.String(),
			"error", err,
		)
	}
}

// notify is best-effort: failures are logged and never fail the pass.
func (uc *ProcessDunningUseCase) notify(
	ctx context.Context,
	pass *dunningPass,
	invoice *entity.Invoice,
	decision valueobject.DunningDecision,
	reason valueobject.NotificationReason,
) {
	if uc.notifier == nil || invoice.Client == nil {
		return
	}

	notice := adapter.DunningNotice{
		TenantID:         pass.tenantID,
		InvoiceID:        invoice.ID,
		InvoiceNumber:    invoice.Number,
		ClientID:         invoice.Client.ID,
		ClientEmail:      invoice.Client.Email,
		ClientName:       invoice.Client.Name,
		AmountMinorUnits: invoice.TotalCents,
		Currency:         invoice.Currency,
		DaysOverdue:      decision.DaysSinceCreated,
		Reason:           reason,
		Channels:         pass.config.NotificationChannels,
	}

	var err error
	if reason == valueobject.ReasonEscalated {
		err = uc.notifier.NotifyEscalated(ctx, notice)
	} else {
		err = uc.notifier.NotifyPaymentDue(ctx, notice)
	}

	if err != nil {
		slog.Warn("Failed to send dunning notification",
			"invoice_id", invoice.ID.String(),
			"reason", string(reason),
			"error", err,
		)
		return
	}

	slog.Info("Dunning notification sent",
		"invoice_id", invoice.ID.String(),
		"client_id", invoice.Client.ID.String(),
		"reason", string(reason),
		"channels", pass.config.NotificationChannels,
	)
}

// nextSlot returns the first candidate interval with no recorded attempt.
func nextSlot(candidates []int, attempts []*entity.PaymentAttempt) (int, bool) {
	used := make(map[int]struct{}, len(attempts))
	for _, a := range attempts {
		used[a.RetryInterval] = struct{}{}
	}
	for _, interval := range candidates {
		if _, done := used[interval]; !done {
			return interval, true
		}
	}
	return 0, false
}
