// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// PaymentAttemptModel represents the payment_attempts table in the database.
type PaymentAttemptModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentMethodID uuid.UUID `gorm:"type:uuid;not null"`
	AttemptNumber   int       `gorm:"not null"`
	RetryInterval   int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	GatewayRef      string    `gorm:"type:varchar(255)"`
	Error           string    `gorm:"type:text"`
	AttemptedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentAttemptModel.
func (PaymentAttemptModel) TableName() string {
	return "payment_attempts"
}

// ToEntity converts a PaymentAttemptModel to a domain PaymentAttempt entity.
func (m *PaymentAttemptModel) ToEntity() *entity.PaymentAttempt {
	return &entity.PaymentAttempt{
		ID:              m.ID,
		InvoiceID:       m.InvoiceID,
		TenantID:        m.TenantID,
		PaymentMethodID: m.PaymentMethodID,
		AttemptNumber:   m.AttemptNumber,
		RetryInterval:   m.RetryInterval,
		Status:          entity.PaymentAttemptStatus(m.Status),
		GatewayRef:      m.GatewayRef,
		Error:           m.Error,
		AttemptedAt:     m.AttemptedAt.UTC(),
	}
}

// PaymentAttemptFromEntity creates a PaymentAttemptModel from a domain PaymentAttempt entity.
func PaymentAttemptFromEntity(a *entity.PaymentAttempt) *PaymentAttemptModel {
	return &PaymentAttemptModel{
		ID:              a.ID,
		InvoiceID:       a.InvoiceID,
		TenantID:        a.TenantID,
		PaymentMethodID: a.PaymentMethodID,
		AttemptNumber:   a.AttemptNumber,
		RetryInterval:   a.RetryInterval,
		Status:          string(a.Status),
		GatewayRef:      a.GatewayRef,
		Error:           a.Error,
		AttemptedAt:     a.AttemptedAt.UTC(),
	}
}
