// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/domain/entity"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/integration/email/templates"
)

// Worker processes the email queue and sends emails.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending emails.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single email job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"tenant_id", job.TenantID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	message, err := w.compose(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	result, err := w.sender.Send(ctx, message)
	if err != nil {
		emailErr := classifySendError(job, err)
		logger.Error("Failed to send email", "error", emailErr, "code", emailErr.Code)
		w.handleFailure(ctx, job, emailErr, emailErr.Code == domainerror.ErrCodePermanentEmailFailure)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent successfully", "resend_id", result.ResendID, "reason", message.Tags["reason"])
}

// compose renders the dunning template for a job and builds the message.
// Jobs queued without a subject get the one for their template and reason.
func (w *Worker) compose(job *entity.EmailJob) (adapter.SendEmailInput, error) {
	templateName := string(job.TemplateType)
	if !templates.IsDunningTemplate(templateName) {
		return adapter.SendEmailInput{}, domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type "+templateName,
			domainerror.ErrInvalidTemplate,
		)
	}

	data := templates.DunningDataFromMap(job.TemplateData)
	html, text, err := w.renderer.Render(templateName, data)
	if err != nil {
		return adapter.SendEmailInput{}, domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"invoice "+data.InvoiceNumber,
			fmt.Errorf("%w: %w", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	subject := job.Subject
	if subject == "" {
		subject = templates.Subject(templateName, data)
	}

	return adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: subject,
		HTML:    html,
		Text:    text,
		Tags:    dunningTags(job, data),
	}, nil
}

// dunningTags labels a message for delivery analytics. Resend accepts only
// ASCII letters, digits, underscores and dashes in tag values.
func dunningTags(job *entity.EmailJob, data templates.DunningData) map[string]string {
	tags := map[string]string{
		"tenant_id": job.TenantID.String(),
		"template":  string(job.TemplateType),
	}
	if data.Reason != "" {
		tags["reason"] = tagValue(data.Reason)
	}
	if data.InvoiceNumber != "" {
		tags["invoice"] = tagValue(data.InvoiceNumber)
	}
	return tags
}

func tagValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}

// classifySendError keeps coded sender errors and marks anything else as a
// retryable send failure.
func classifySendError(job *entity.EmailJob, err error) *domainerror.EmailError {
	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		return emailErr
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeEmailSendFailed,
		"email "+job.ID.String(),
		fmt.Errorf("%w: %w", domainerror.ErrEmailSendFailed, err),
	)
}

// handleFailure handles a failed email job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Email job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// ProcessNow processes one batch of pending emails immediately.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

// PurgeSent removes sent jobs processed more than olderThanDays ago.
func (w *Worker) PurgeSent(ctx context.Context, olderThanDays int) (int64, error) {
	deleted, err := w.queue.DeleteOldSentJobs(ctx, olderThanDays)
	if err != nil {
		return 0, err
	}
	slog.Info("Purged sent emails", "deleted", deleted, "older_than_days", olderThanDays)
	return deleted, nil
}
