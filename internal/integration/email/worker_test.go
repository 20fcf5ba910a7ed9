package email

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/adapter/mocks"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/integration/email/templates"
)

func newWorkerFixture(t *testing.T) (*Worker, *mocks.MockEmailQueueRepository, *mocks.MockEmailSender) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	queue := mocks.NewMockEmailQueueRepository(ctrl)
	sender := mocks.NewMockEmailSender(ctrl)
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig()), queue, sender
}

func reminderJob() *entity.EmailJob {
	return entity.NewEmailJob(uuid.New(), entity.TemplateDunningReminder, "ap@acme.test", "Acme", "Payment failed for invoice INV-1", map[string]interface{}{
		"client_name":    "Acme",
		"invoice_number": "INV-1",
		"amount":         "99.00 USD",
		"days_overdue":   "3",
		"reason":         "payment_failed",
		"invoice_url":    "https://billing.test/invoices/1",
	})
}

func TestWorker_SendsPendingJob(t *testing.T) {
	worker, queue, sender := newWorkerFixture(t)
	job := reminderJob()

	var statuses []entity.EmailStatus
	queue.EXPECT().GetPendingJobs(gomock.Any(), 10).Return([]*entity.EmailJob{job}, nil)
	queue.EXPECT().Update(gomock.Any(), job).DoAndReturn(func(_ context.Context, j *entity.EmailJob) error {
		statuses = append(statuses, j.Status)
		return nil
	}).Times(2)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
		assert.Equal(t, "ap@acme.test", input.To)
		assert.Contains(t, input.HTML, "did not go through")
		assert.Contains(t, input.Text, "99.00 USD")
		assert.Equal(t, job.TenantID.String(), input.Tags["tenant_id"])
		assert.Equal(t, "dunning_reminder", input.Tags["template"])
		assert.Equal(t, "payment_failed", input.Tags["reason"])
		assert.Equal(t, "INV-1", input.Tags["invoice"])
		assert.Equal(t, "Payment failed for invoice INV-1", input.Subject)
		return &adapter.SendEmailResult{ResendID: "re_123"}, nil
	})

	worker.ProcessNow(context.Background())

	assert.Equal(t, []entity.EmailStatus{entity.EmailStatusProcessing, entity.EmailStatusSent}, statuses)
	assert.Equal(t, "re_123", job.ResendID)
	assert.NotNil(t, job.ProcessedAt)
}

func TestWorker_TemporaryFailureSchedulesRetry(t *testing.T) {
	worker, queue, sender := newWorkerFixture(t)
	job := reminderJob()

	queue.EXPECT().GetPendingJobs(gomock.Any(), 10).Return([]*entity.EmailJob{job}, nil)
	queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure, "rate limited", errors.New("429"),
	))

	worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusPending, job.Status)
	assert.Equal(t, 1, job.Attempts)
}

func TestWorker_PermanentFailure(t *testing.T) {
	worker, queue, sender := newWorkerFixture(t)
	job := reminderJob()

	queue.EXPECT().GetPendingJobs(gomock.Any(), 10).Return([]*entity.EmailJob{job}, nil)
	queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, domainerror.NewEmailError(
		domainerror.ErrCodePermanentEmailFailure, "rejected", errors.New("422"),
	))

	worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusFailed, job.Status)
}

func TestWorker_UnknownTemplateIsPermanent(t *testing.T) {
	worker, queue, _ := newWorkerFixture(t)
	job := reminderJob()
	job.TemplateType = "welcome"

	queue.EXPECT().GetPendingJobs(gomock.Any(), 10).Return([]*entity.EmailJob{job}, nil)
	queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)

	worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusFailed, job.Status)
	assert.Contains(t, job.LastError, "unknown template type")
}

func TestWorker_QueueErrorStopsBatch(t *testing.T) {
	worker, queue, _ := newWorkerFixture(t)

	queue.EXPECT().GetPendingJobs(gomock.Any(), 10).Return(nil, errors.New("db down"))

	worker.ProcessNow(context.Background())
}

func TestWorker_PurgeSent(t *testing.T) {
	worker, queue, _ := newWorkerFixture(t)

	queue.EXPECT().DeleteOldSentJobs(gomock.Any(), 30).Return(int64(4), nil)
	deleted, err := worker.PurgeSent(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	queue.EXPECT().DeleteOldSentJobs(gomock.Any(), 7).Return(int64(0), errors.New("db down"))
	_, err = worker.PurgeSent(context.Background(), 7)
	assert.Error(t, err)
}

func TestWorker_UncodedSendErrorIsRetried(t *testing.T) {
	worker, queue, sender := newWorkerFixture(t)
	job := reminderJob()

	queue.EXPECT().GetPendingJobs(gomock.Any(), 10).Return([]*entity.EmailJob{job}, nil)
	queue.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	worker.ProcessNow(context.Background())

	assert.Equal(t, entity.EmailStatusPending, job.Status)
	assert.Contains(t, job.LastError, domainerror.ErrEmailSendFailed.Error())
	assert.Contains(t, job.LastError, "connection reset")
}

func TestWorker_ComposeFallsBackToReasonSubject(t *testing.T) {
	worker, _, _ := newWorkerFixture(t)

	job := entity.NewEmailJob(uuid.New(), entity.TemplateInvoiceEscalated, "ap@acme.test", "Acme", "", map[string]interface{}{
		"invoice_number": "INV 42/A",
		"days_overdue":   "21",
		"reason":         "escalated",
	})

	message, err := worker.compose(job)

	assert.NoError(t, err)
	assert.Equal(t, "Invoice INV 42/A is 21 days overdue", message.Subject)
	assert.Equal(t, "INV_42_A", message.Tags["invoice"])
	assert.Equal(t, "escalated", message.Tags["reason"])
	assert.Equal(t, job.TenantID.String(), message.Tags["tenant_id"])
}
