// Package error defines domain-specific errors for the receivables engine.
package error

import "errors"

// Dunning domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrPaymentMethodNotFound is returned when a client has no active default payment method.
	ErrPaymentMethodNotFound = errors.New("no active default payment method")

	// ErrInvalidInvoiceID is returned when the invoice ID is malformed.
	ErrInvalidInvoiceID = errors.New("invalid invoice ID")

	// ErrLockNotAcquired is returned when another worker holds the job lock.
	ErrLockNotAcquired = errors.New("job lock held by another worker")
)

// DunningErrorCode defines error codes for dunning errors.
// Format: DUN-XXYYYY where XX is category and YYYY is specific error.
type DunningErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInvoiceID DunningErrorCode = "DUN-010001"
	ErrCodeInvoiceNotFound  DunningErrorCode = "DUN-010002"

	// Store errors (02XXXX)
	ErrCodeFetchUnpaidFailed   DunningErrorCode = "DUN-020001"
	ErrCodeUpdateInvoiceFailed DunningErrorCode = "DUN-020002"
	ErrCodeAgingFailed         DunningErrorCode = "DUN-020003"

	// Processing errors (03XXXX)
	ErrCodeDunningCancelled DunningErrorCode = "DUN-030001"
)

// DunningError represents a dunning error with code and message.
type DunningError struct {
	Code    DunningErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DunningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DunningError) Unwrap() error {
	return e.Err
}

// NewDunningError creates a new DunningError with the given code and message.
func NewDunningError(code DunningErrorCode, message string, err error) *DunningError {
	return &DunningError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
