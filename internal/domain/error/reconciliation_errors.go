// Package error defines domain-specific errors for the receivables engine.
package error

import "errors"

// Reconciliation domain errors.
var (
	// ErrTransactionNotFound is returned when a bank transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionAlreadyMatched is returned when committing a match for a transaction that is already matched.
	ErrTransactionAlreadyMatched = errors.New("transaction already matched")

	// ErrInvoiceNotPayable is returned when the matched invoice is no longer SENT or UNPAID.
	ErrInvoiceNotPayable = errors.New("invoice is not payable")

	// ErrInvalidConnectionID is returned when the connection ID is malformed.
	ErrInvalidConnectionID = errors.New("invalid connection ID")
)

// ReconciliationErrorCode defines error codes for reconciliation errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type ReconciliationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidConnectionID ReconciliationErrorCode = "REC-010001"
	ErrCodeInvalidCriteria     ReconciliationErrorCode = "REC-010002"

	// Store errors (02XXXX)
	ErrCodeFetchTransactionsFailed ReconciliationErrorCode = "REC-020001"
	ErrCodeFetchInvoicesFailed     ReconciliationErrorCode = "REC-020002"
	ErrCodeCommitMatchFailed       ReconciliationErrorCode = "REC-020003"
	ErrCodeStatsFailed             ReconciliationErrorCode = "REC-020004"

	// State errors (03XXXX)
	ErrCodeTransactionAlreadyMatched ReconciliationErrorCode = "REC-030001"
	ErrCodeJobAlreadyRunning         ReconciliationErrorCode = "REC-030002"
)

// ReconciliationError represents a reconciliation error with code and message.
type ReconciliationError struct {
	Code    ReconciliationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// NewReconciliationError creates a new ReconciliationError with the given code and message.
func NewReconciliationError(code ReconciliationErrorCode, message string, err error) *ReconciliationError {
	return &ReconciliationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
