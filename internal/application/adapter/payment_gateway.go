// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// ChargeStatus is the gateway-reported status of a charge.
type ChargeStatus string

const (
	ChargeStatusSucceeded      ChargeStatus = "succeeded"
	ChargeStatusProcessing     ChargeStatus = "processing"
	ChargeStatusRequiresAction ChargeStatus = "requires_action"
	ChargeStatusFailed         ChargeStatus = "failed"
)

// ChargeRequest represents an off-session charge against a stored payment method.
type ChargeRequest struct {
	AmountMinorUnits   int64
	Currency           string // Lowercase ISO 4217
	PaymentMethodToken string
	CustomerRef        string
	IdempotencyKey     string
	Metadata           map[string]string
}

// ChargeResult represents the gateway response to a charge.
type ChargeResult struct {
	ID     string
	Status ChargeStatus
}

// PaymentGateway defines the interface for charging stored payment methods.
//
//go:generate mockgen -destination=mocks/mock_payment_gateway.go -package=mocks -source=payment_gateway.go PaymentGateway
type PaymentGateway interface {
	// Charge creates and confirms an off-session charge.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
