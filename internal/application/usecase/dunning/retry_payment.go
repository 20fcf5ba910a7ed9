package dunning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
)

// RetryPaymentInput represents an off-session charge for an invoice due for retry.
type RetryPaymentInput struct {
	InvoiceID          uuid.UUID
	PaymentMethodToken string
	CustomerRef        string
	AmountMinorUnits   int64
	Currency           string
	AttemptNumber      int
}

// PaymentResult is the outcome of a retry. Declines are results, not errors.
type PaymentResult struct {
	Succeeded  bool
	GatewayRef string
	Error      string
}

// PaymentRetryExecutor charges stored payment methods through the gateway.
type PaymentRetryExecutor struct {
	gateway adapter.PaymentGateway
}

// NewPaymentRetryExecutor creates a new PaymentRetryExecutor instance.
func NewPaymentRetryExecutor(gateway adapter.PaymentGateway) *PaymentRetryExecutor {
	return &PaymentRetryExecutor{gateway: gateway}
}

// Retry attempts the charge. It never returns an error: any gateway failure
// is reported as an unsuccessful result.
func (e *PaymentRetryExecutor) Retry(ctx context.Context, input RetryPaymentInput) PaymentResult {
	logger := slog.With("invoice_id", input.InvoiceID.String(), "attempt", input.AttemptNumber)

	if e == nil || e.gateway == nil {
		err := domainerror.NewPaymentError(
			domainerror.ErrCodeGatewayNotConfigured,
			"payment gateway unavailable",
			domainerror.ErrGatewayNotConfigured,
		)
		logger.Error("Payment retry failed", "error", err)
		return PaymentResult{Error: err.Error()}
	}

	charge, err := e.gateway.Charge(ctx, adapter.ChargeRequest{
		AmountMinorUnits:   input.AmountMinorUnits,
		Currency:           strings.ToLower(input.Currency),
		PaymentMethodToken: input.PaymentMethodToken,
		CustomerRef:        input.CustomerRef,
		IdempotencyKey:     fmt.Sprintf("dunning-%s-%d", input.InvoiceID, input.AttemptNumber),
		Metadata: map[string]string{
			"invoiceId":     input.InvoiceID.String(),
			"retryAttempt":  "true",
			"attemptNumber": strconv.Itoa(input.AttemptNumber),
		},
	})
	if err == nil && charge == nil {
		err = errors.New("empty gateway response")
	}
	if err != nil {
		logger.Error("Payment retry failed", "error", err)
		return PaymentResult{Error: err.Error()}
	}

	if charge.Status != adapter.ChargeStatusSucceeded {
		logger.Info("Payment retry not successful", "status", string(charge.Status), "gateway_ref", charge.ID)
		return PaymentResult{
			GatewayRef: charge.ID,
			Error:      "charge status " + string(charge.Status),
		}
	}

	logger.Info("Payment retry succeeded", "gateway_ref", charge.ID)
	return PaymentResult{Succeeded: true, GatewayRef: charge.ID}
}
