// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodStatus represents whether a stored payment method can be charged.
type PaymentMethodStatus string

const (
	PaymentMethodStatusActive   PaymentMethodStatus = "ACTIVE"
	PaymentMethodStatusExpired  PaymentMethodStatus = "EXPIRED"
	PaymentMethodStatusDisabled PaymentMethodStatus = "DISABLED"
)

// PaymentMethod is a gateway-tokenized payment method stored for a client.
type PaymentMethod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TenantID     uuid.UUID
	GatewayToken string // Gateway payment method reference (e.g. pm_...)
	CustomerRef  string // Optional gateway customer reference (e.g. cus_...)
	IsDefault    bool
	Status       PaymentMethodStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsChargeable reports whether the method is the active default.
func (p *PaymentMethod) IsChargeable() bool {
	return p.IsDefault && p.Status == PaymentMethodStatusActive
}
