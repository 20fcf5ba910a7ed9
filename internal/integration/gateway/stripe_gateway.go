// Package gateway provides payment gateway clients.
package gateway

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
)

// StripeGateway implements adapter.PaymentGateway with Stripe PaymentIntents.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway using the default Stripe backends.
func NewStripeGateway(secretKey string) *StripeGateway {
	return NewStripeGatewayWithBackends(secretKey, nil)
}

// NewStripeGatewayWithBackends creates a gateway against custom backends.
// A nil backends value selects the Stripe defaults.
func NewStripeGatewayWithBackends(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// Charge creates and confirms an off-session PaymentIntent.
func (g *StripeGateway) Charge(ctx context.Context, req adapter.ChargeRequest) (*adapter.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinorUnits),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodToken),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	if req.CustomerRef != "" {
		params.Customer = stripe.String(req.CustomerRef)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, translateStripeError(err)
	}

	return &adapter.ChargeResult{
		ID:     intent.ID,
		Status: chargeStatus(intent.Status),
	}, nil
}

func chargeStatus(status stripe.PaymentIntentStatus) adapter.ChargeStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return adapter.ChargeStatusSucceeded
	case stripe.PaymentIntentStatusProcessing:
		return adapter.ChargeStatusProcessing
	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		return adapter.ChargeStatusRequiresAction
	default:
		return adapter.ChargeStatusFailed
	}
}

func translateStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return domainerror.NewPaymentError(domainerror.ErrCodeGatewayUnavailable, "payment gateway request failed", err)
	}

	switch {
	case stripeErr.Code == stripe.ErrorCodeAuthenticationRequired:
		return domainerror.NewPaymentError(domainerror.ErrCodeAuthenticationNeeded, "customer authentication required", err)
	case stripeErr.Type == stripe.ErrorTypeCard:
		return domainerror.NewPaymentError(domainerror.ErrCodeChargeDeclined, domainerror.ErrChargeDeclined.Error(), err)
	default:
		return domainerror.NewPaymentError(domainerror.ErrCodeGatewayUnavailable, "payment gateway request failed", err)
	}
}

// Ensure StripeGateway implements adapter.PaymentGateway.
var _ adapter.PaymentGateway = (*StripeGateway)(nil)
