// Package error defines domain-specific errors for the receivables engine.
package error

import "errors"

// Payment gateway errors.
var (
	// ErrGatewayNotConfigured is returned when no gateway credentials are available.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")

	// ErrChargeDeclined is returned by gateway clients when the card is declined.
	ErrChargeDeclined = errors.New("charge declined")
)

// PaymentErrorCode defines error codes for payment gateway errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	ErrCodeGatewayNotConfigured PaymentErrorCode = "PAY-010001"
	ErrCodeChargeDeclined       PaymentErrorCode = "PAY-020001"
	ErrCodeAuthenticationNeeded PaymentErrorCode = "PAY-020002"
	ErrCodeGatewayUnavailable   PaymentErrorCode = "PAY-030001"
)

// PaymentError represents a payment gateway error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
