// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// PaymentMethodModel represents the payment_methods table in the database.
type PaymentMethodModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_payment_methods_owner"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index:idx_payment_methods_owner"`
	GatewayToken string    `gorm:"type:varchar(255);not null"`
	CustomerRef  string    `gorm:"type:varchar(255)"`
	IsDefault    bool      `gorm:"not null;default:false"`
	Status       string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentMethodModel.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToEntity converts a PaymentMethodModel to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToEntity() *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:           m.ID,
		UserID:       m.UserID,
		TenantID:     m.TenantID,
		GatewayToken: m.GatewayToken,
		CustomerRef:  m.CustomerRef,
		IsDefault:    m.IsDefault,
		Status:       entity.PaymentMethodStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// PaymentMethodFromEntity creates a PaymentMethodModel from a domain PaymentMethod entity.
func PaymentMethodFromEntity(p *entity.PaymentMethod) *PaymentMethodModel {
	return &PaymentMethodModel{
		ID:           p.ID,
		UserID:       p.UserID,
		TenantID:     p.TenantID,
		GatewayToken: p.GatewayToken,
		CustomerRef:  p.CustomerRef,
		IsDefault:    p.IsDefault,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
