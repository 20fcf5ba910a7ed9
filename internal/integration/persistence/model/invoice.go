// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Name      string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:       m.ID,
		TenantID: m.TenantID,
		Email:    m.Email,
		Name:     m.Name,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(c *entity.Client) *ClientModel {
	now := time.Now().UTC()
	return &ClientModel{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Email:     c.Email,
		Name:      c.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_invoices_tenant_status"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	Number      string     `gorm:"type:varchar(50);not null"`
	TotalCents  int64      `gorm:"not null"`
	Currency    string     `gorm:"type:varchar(3);not null"`
	Status      string     `gorm:"type:varchar(10);not null;index:idx_invoices_tenant_status"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null"`
	PaidAt      *time.Time
	EscalatedAt *time.Time

	// Relationships (not loaded by default, use Preload)
	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	inv := &entity.Invoice{
		ID:          m.ID,
		TenantID:    m.TenantID,
		ClientID:    m.ClientID,
		Number:      m.Number,
		TotalCents:  m.TotalCents,
		Currency:    m.Currency,
		Status:      entity.InvoiceStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt,
		PaidAt:      m.PaidAt,
		EscalatedAt: m.EscalatedAt,
	}
	if m.Client != nil {
		inv.Client = m.Client.ToEntity()
	}
	return inv
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
// The client relationship is not copied.
func InvoiceFromEntity(inv *entity.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:          inv.ID,
		TenantID:    inv.TenantID,
		ClientID:    inv.ClientID,
		Number:      inv.Number,
		TotalCents:  inv.TotalCents,
		Currency:    inv.Currency,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt.UTC(),
		UpdatedAt:   inv.UpdatedAt,
		PaidAt:      inv.PaidAt,
		EscalatedAt: inv.EscalatedAt,
	}
}
