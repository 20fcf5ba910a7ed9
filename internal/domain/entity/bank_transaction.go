// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDirection represents whether money entered or left the account.
type TransactionDirection string

const (
	TransactionDirectionCredit TransactionDirection = "credit"
	TransactionDirectionDebit  TransactionDirection = "debit"
)

// MatchTargetInvoice is the matchedToType value for transactions linked to invoices.
const MatchTargetInvoice = "invoice"

// BankTransaction represents a normalized bank-feed transaction for a connection.
type BankTransaction struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ConnectionID  uuid.UUID
	Amount        decimal.Decimal // Signed, currency implicit per tenant
	Description   string
	Date          time.Time
	Direction     TransactionDirection
	Matched       bool
	MatchedToID   *uuid.UUID
	MatchedToType string
	MatchedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBankTransaction creates a new unmatched BankTransaction entity.
func NewBankTransaction(
	tenantID uuid.UUID,
	connectionID uuid.UUID,
	amount decimal.Decimal,
	description string,
	date time.Time,
	direction TransactionDirection,
) *BankTransaction {
	now := time.Now().UTC()

	return &BankTransaction{
		ID:           uuid.New(),
		TenantID:     tenantID,
		ConnectionID: connectionID,
		Amount:       amount,
		Description:  description,
		Date:         date,
		Direction:    direction,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsCredit reports whether the transaction is an incoming payment.
func (t *BankTransaction) IsCredit() bool {
	return t.Direction == TransactionDirectionCredit
}
