// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// AuditEntry is a structured record of a reconciliation or dunning outcome.
type AuditEntry struct {
	Level      slog.Level
	Action     string
	TenantID   uuid.UUID
	EntityType string
	EntityID   uuid.UUID
	Message    string
	Attributes map[string]any
}

// AuditLogger defines the best-effort audit sink. Implementations must not fail the caller.
//
//go:generate mockgen -destination=mocks/mock_audit_logger.go -package=mocks -source=audit_logger.go AuditLogger
type AuditLogger interface {
	Record(ctx context.Context, entry AuditEntry)
}

// NopAuditLogger discards every entry.
type NopAuditLogger struct{}

// Record implements AuditLogger.
func (NopAuditLogger) Record(context.Context, AuditEntry) {}

// AuditOrNop returns logger, or a NopAuditLogger when logger is nil.
func AuditOrNop(logger AuditLogger) AuditLogger {
	if logger == nil {
		return NopAuditLogger{}
	}
	return logger
}
