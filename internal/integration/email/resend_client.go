// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
		Tags:    toResendTags(input.Tags),
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, classifyResendError(input, err)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// toResendTags converts labels to Resend tags in a stable order.
func toResendTags(labels map[string]string) []resend.Tag {
	if len(labels) == 0 {
		return nil
	}
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	tags := make([]resend.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, resend.Tag{Name: name, Value: labels[name]})
	}
	return tags
}

// permanentPatterns mark provider responses that will not succeed on retry:
// 401, 403 and 422 plus their textual forms. 429 and 5xx are temporary.
var permanentPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

// classifyResendError codes a provider error as permanent or temporary so the
// worker knows whether to retry the job.
func classifyResendError(input adapter.SendEmailInput, err error) *domainerror.EmailError {
	message := fmt.Sprintf("resend rejected %q to %s", input.Subject, input.To)
	if isPermanentError(err) {
		return domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			message,
			fmt.Errorf("%w: %w", domainerror.ErrPermanentEmailFailure, err),
		)
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		message,
		fmt.Errorf("%w: %w", domainerror.ErrTemporaryEmailFailure, err),
	)
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// LogSender writes emails to the log instead of delivering them. It is used
// when no Resend API key is configured.
type LogSender struct{}

// Send implements adapter.EmailSender.
func (LogSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	id := "log-" + uuid.NewString()
	slog.Info("Email delivery disabled, logging message",
		"to", input.To,
		"subject", input.Subject,
		"tags", input.Tags,
		"message_id", id,
	)
	return &adapter.SendEmailResult{ResendID: id}, nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = LogSender{}
)
