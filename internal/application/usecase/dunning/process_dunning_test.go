package dunning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/adapter/mocks"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

var now = time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)

type dunningFixture struct {
	invoiceRepo *mocks.MockInvoiceRepository
	methodRepo  *mocks.MockPaymentMethodRepository
	attemptRepo *mocks.MockPaymentAttemptRepository
	gateway     *mocks.MockPaymentGateway
	notifier    *mocks.MockDunningNotifier
	audit       *mocks.MockAuditLogger
	useCase     *ProcessDunningUseCase
	tenantID    uuid.UUID
}

func newDunningFixture(t *testing.T) *dunningFixture {
	ctrl := gomock.NewController(t)
	f := &dunningFixture{
		invoiceRepo: mocks.NewMockInvoiceRepository(ctrl),
		methodRepo:  mocks.NewMockPaymentMethodRepository(ctrl),
		attemptRepo: mocks.NewMockPaymentAttemptRepository(ctrl),
		gateway:     mocks.NewMockPaymentGateway(ctrl),
		notifier:    mocks.NewMockDunningNotifier(ctrl),
		audit:       mocks.NewMockAuditLogger(ctrl),
		tenantID:    uuid.New(),
	}
	f.useCase = NewProcessDunningUseCase(
		f.invoiceRepo,
		f.methodRepo,
		f.attemptRepo,
		NewPaymentRetryExecutor(f.gateway),
		f.notifier,
		f.audit,
		adapter.ClockFunc(func() time.Time { return now }),
	)
	return f
}

func (f *dunningFixture) invoiceAged(days int) *entity.Invoice {
	clientID := uuid.New()
	inv := entity.NewInvoice(f.tenantID, &clientID, "INV-42", 50000, "USD")
	inv.CreatedAt = now.AddDate(0, 0, -days)
	inv.Client = &entity.Client{ID: clientID, TenantID: f.tenantID, Email: "ap@acme.test", Name: "Acme"}
	return inv
}

func (f *dunningFixture) method(inv *entity.Invoice) *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:           uuid.New(),
		UserID:       inv.Client.ID,
		TenantID:     f.tenantID,
		GatewayToken: "pm_card_visa",
		IsDefault:    true,
		Status:       entity.PaymentMethodStatusActive,
	}
}

func (f *dunningFixture) run(t *testing.T, invoices ...*entity.Invoice) *valueobject.DunningResult {
	t.Helper()
	f.invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), f.tenantID).Return(invoices, nil)

	result, err := f.useCase.Execute(context.Background(), ProcessDunningInput{TenantID: f.tenantID})
	require.NoError(t, err)
	return result
}

func TestProcessDunning_FirstEscalationStampsAndNotifies(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(15)

	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry adapter.AuditEntry) {
		assert.Equal(t, "dunning.escalated", entry.Action)
		assert.Equal(t, inv.ID, entry.EntityID)
	})
	f.invoiceRepo.EXPECT().MarkEscalated(gomock.Any(), f.tenantID, inv.ID, now).Return(nil)
	f.notifier.EXPECT().NotifyEscalated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, notice adapter.DunningNotice) error {
			assert.Equal(t, valueobject.ReasonEscalated, notice.Reason)
			assert.Equal(t, 15, notice.DaysOverdue)
			assert.Equal(t, "ap@acme.test", notice.ClientEmail)
			return nil
		})

	result := f.run(t, inv)

	assert.Equal(t, valueobject.DunningResult{Processed: 1, Escalated: 1, Errors: []string{}}, *result)
}

func TestProcessDunning_RepeatEscalationOnlyAudits(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(30)
	earlier := now.AddDate(0, 0, -10)
	inv.EscalatedAt = &earlier

	f.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	result := f.run(t, inv)

	assert.Equal(t, 1, result.Escalated)
	assert.Equal(t, 0, result.Retried)
}

func TestProcessDunning_RetrySuccessMarksPaid(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(3)
	method := f.method(inv)

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return(nil, nil)
	f.methodRepo.EXPECT().FindActiveDefault(gomock.Any(), inv.Client.ID, f.tenantID).Return(method, nil)
	f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req adapter.ChargeRequest) (*adapter.ChargeResult, error) {
			assert.Equal(t, int64(50000), req.AmountMinorUnits)
			assert.Equal(t, "usd", req.Currency)
			assert.Equal(t, "pm_card_visa", req.PaymentMethodToken)
			return &adapter.ChargeResult{ID: "pi_ok", Status: adapter.ChargeStatusSucceeded}, nil
		})
	f.attemptRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, attempt *entity.PaymentAttempt) error {
			assert.Equal(t, entity.PaymentAttemptSucceeded, attempt.Status)
			assert.Equal(t, 1, attempt.AttemptNumber)
			assert.Equal(t, 3, attempt.RetryInterval)
			assert.Equal(t, "pi_ok", attempt.GatewayRef)
			return nil
		})
	f.invoiceRepo.EXPECT().MarkPaid(gomock.Any(), f.tenantID, inv.ID, now).Return(nil)

	result := f.run(t, inv)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Retried)
	assert.Equal(t, 0, result.Failed)
}

func TestProcessDunning_DeclineNotifiesAndCountsFailed(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(7)

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return(nil, nil)
	f.methodRepo.EXPECT().FindActiveDefault(gomock.Any(), inv.Client.ID, f.tenantID).Return(f.method(inv), nil)
	f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errors.New("card_declined"))
	f.attemptRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, attempt *entity.PaymentAttempt) error {
			assert.Equal(t, entity.PaymentAttemptFailed, attempt.Status)
			assert.Equal(t, "card_declined", attempt.Error)
			return nil
		})
	f.notifier.EXPECT().NotifyPaymentDue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, notice adapter.DunningNotice) error {
			assert.Equal(t, valueobject.ReasonPaymentFailed, notice.Reason)
			assert.Equal(t, []string{"email"}, notice.Channels)
			return nil
		})

	result := f.run(t, inv)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Retried)
	assert.Empty(t, result.Errors)
}

func TestProcessDunning_NoPaymentMethodIsNotificationOnly(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(1)

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return(nil, nil)
	f.methodRepo.EXPECT().FindActiveDefault(gomock.Any(), inv.Client.ID, f.tenantID).
		Return(nil, domainerror.ErrPaymentMethodNotFound)
	f.notifier.EXPECT().NotifyPaymentDue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, notice adapter.DunningNotice) error {
			assert.Equal(t, valueobject.ReasonNoPaymentMethod, notice.Reason)
			return errors.New("queue unavailable")
		})

	result := f.run(t, inv)

	assert.Equal(t, valueobject.DunningResult{Processed: 1, Errors: []string{}}, *result)
}

func TestProcessDunning_AttemptedSlotIsSkipped(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(4)

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return([]*entity.PaymentAttempt{
		{InvoiceID: inv.ID, AttemptNumber: 1, RetryInterval: 1},
		{InvoiceID: inv.ID, AttemptNumber: 2, RetryInterval: 3},
	}, nil)

	result := f.run(t, inv)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
}

func TestProcessDunning_AdjacentSlotIsTriedOnOverlap(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(2)

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return([]*entity.PaymentAttempt{
		{InvoiceID: inv.ID, AttemptNumber: 1, RetryInterval: 1, AttemptedAt: now.AddDate(0, 0, -1)},
	}, nil)
	f.methodRepo.EXPECT().FindActiveDefault(gomock.Any(), gomock.Any(), gomock.Any()).Return(f.method(inv), nil)
	f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&adapter.ChargeResult{ID: "pi_2", Status: adapter.ChargeStatusSucceeded}, nil)
	f.attemptRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, attempt *entity.PaymentAttempt) error {
			assert.Equal(t, 2, attempt.AttemptNumber)
			assert.Equal(t, 3, attempt.RetryInterval)
			return nil
		})
	f.invoiceRepo.EXPECT().MarkPaid(gomock.Any(), f.tenantID, inv.ID, now).Return(nil)

	result := f.run(t, inv)

	assert.Equal(t, 1, result.Retried)
}

func TestProcessDunning_SucceededChargeIsNotRepeated(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(7)
	prior := entity.NewPaymentAttempt(inv.ID, f.tenantID, uuid.New(), 2, 3, now.AddDate(0, 0, -4))
	prior.MarkSucceeded("pi_already_paid")

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return([]*entity.PaymentAttempt{prior}, nil)
	f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Times(0)
	f.invoiceRepo.EXPECT().MarkPaid(gomock.Any(), f.tenantID, inv.ID, now).Return(nil)

	result := f.run(t, inv)

	assert.Equal(t, 1, result.Retried)
	assert.Equal(t, 0, result.Failed)
}

func TestProcessDunning_SucceededChargeMarkPaidFailureIsReported(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(7)
	prior := entity.NewPaymentAttempt(inv.ID, f.tenantID, uuid.New(), 2, 3, now.AddDate(0, 0, -4))
	prior.MarkSucceeded("pi_already_paid")

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return([]*entity.PaymentAttempt{prior}, nil)
	f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Times(0)
	f.invoiceRepo.EXPECT().MarkPaid(gomock.Any(), f.tenantID, inv.ID, now).Return(errors.New("db down"))

	result := f.run(t, inv)

	assert.Equal(t, 0, result.Retried)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "pi_already_paid")
}

func TestProcessDunning_MaxRetriesStopsRetrying(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(6)
	config := valueobject.DefaultDunningConfig()
	config.MaxRetries = 2

	f.invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), f.tenantID).Return([]*entity.Invoice{inv}, nil)
	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), inv.ID).Return([]*entity.PaymentAttempt{
		{RetryInterval: 1}, {RetryInterval: 3},
	}, nil)

	result, err := f.useCase.Execute(context.Background(), ProcessDunningInput{
		TenantID: f.tenantID,
		Config:   config,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
}

func TestProcessDunning_PerInvoiceErrorDoesNotHalt(t *testing.T) {
	f := newDunningFixture(t)
	broken := f.invoiceAged(3)
	idle := f.invoiceAged(5)

	f.attemptRepo.EXPECT().ListByInvoice(gomock.Any(), broken.ID).Return(nil, errors.New("deadlock detected"))

	result := f.run(t, broken, idle)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], broken.ID.String())
	assert.Contains(t, result.Errors[0], "deadlock detected")
}

func TestProcessDunning_RetryWithoutClientIsNoOp(t *testing.T) {
	f := newDunningFixture(t)
	inv := f.invoiceAged(3)
	inv.Client = nil

	result := f.run(t, inv)

	assert.Equal(t, valueobject.DunningResult{Processed: 1, Errors: []string{}}, *result)
}

func TestProcessDunning_FetchFailure(t *testing.T) {
	f := newDunningFixture(t)
	f.invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), f.tenantID).Return(nil, errors.New("db down"))

	result, err := f.useCase.Execute(context.Background(), ProcessDunningInput{TenantID: f.tenantID})

	assert.Nil(t, result)
	var dunErr *domainerror.DunningError
	require.ErrorAs(t, err, &dunErr)
	assert.Equal(t, domainerror.ErrCodeFetchUnpaidFailed, dunErr.Code)
}

func TestProcessDunning_Cancelled(t *testing.T) {
	f := newDunningFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.invoiceRepo.EXPECT().ListUnpaid(gomock.Any(), f.tenantID).Return([]*entity.Invoice{f.invoiceAged(3)}, nil)

	result, err := f.useCase.Execute(ctx, ProcessDunningInput{TenantID: f.tenantID})

	assert.ErrorIs(t, err, context.Canceled)
	var dunErr *domainerror.DunningError
	require.ErrorAs(t, err, &dunErr)
	assert.Equal(t, domainerror.ErrCodeDunningCancelled, dunErr.Code)
	assert.Equal(t, 0, result.Processed)
}
