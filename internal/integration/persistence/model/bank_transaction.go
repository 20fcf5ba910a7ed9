// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// BankTransactionModel represents the bank_transactions table in the database.
type BankTransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_bank_txn_scope"`
	ConnectionID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_bank_txn_scope"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   string          `gorm:"type:varchar(500);not null"`
	Date          time.Time       `gorm:"not null;index"`
	Direction     string          `gorm:"type:varchar(10);not null"`
	Matched       bool            `gorm:"not null;default:false;index:idx_bank_txn_scope"`
	MatchedToID   *uuid.UUID      `gorm:"type:uuid"`
	MatchedToType string          `gorm:"type:varchar(20)"`
	MatchedAt     *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the BankTransactionModel.
func (BankTransactionModel) TableName() string {
	return "bank_transactions"
}

// ToEntity converts a BankTransactionModel to a domain BankTransaction entity.
func (m *BankTransactionModel) ToEntity() *entity.BankTransaction {
	return &entity.BankTransaction{
		ID:            m.ID,
		TenantID:      m.TenantID,
		ConnectionID:  m.ConnectionID,
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date.UTC(),
		Direction:     entity.TransactionDirection(m.Direction),
		Matched:       m.Matched,
		MatchedToID:   m.MatchedToID,
		MatchedToType: m.MatchedToType,
		MatchedAt:     m.MatchedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// BankTransactionFromEntity creates a BankTransactionModel from a domain BankTransaction entity.
func BankTransactionFromEntity(t *entity.BankTransaction) *BankTransactionModel {
	return &BankTransactionModel{
		ID:            t.ID,
		TenantID:      t.TenantID,
		ConnectionID:  t.ConnectionID,
		Amount:        t.Amount,
		Description:   t.Description,
		Date:          t.Date.UTC(),
		Direction:     string(t.Direction),
		Matched:       t.Matched,
		MatchedToID:   t.MatchedToID,
		MatchedToType: t.MatchedToType,
		MatchedAt:     t.MatchedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
