// Package audit provides the structured audit trail for reconciliation and dunning.
package audit

import (
	"context"
	"log/slog"

	"github.com/ledgerline/receivables/internal/application/adapter"
)

// SlogLogger writes audit entries as structured log records.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates an audit logger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger.With("component", "audit")}
}

// Record implements adapter.AuditLogger.
func (l *SlogLogger) Record(ctx context.Context, entry adapter.AuditEntry) {
	attrs := []slog.Attr{
		slog.String("action", entry.Action),
		slog.String("tenant_id", entry.TenantID.String()),
	}
	if entry.EntityType != "" {
		attrs = append(attrs,
			slog.String("entity_type", entry.EntityType),
			slog.String("entity_id", entry.EntityID.String()),
		)
	}
	if len(entry.Attributes) > 0 {
		details := make([]any, 0, len(entry.Attributes)*2)
		for key, value := range entry.Attributes {
			details = append(details, key, value)
		}
		attrs = append(attrs, slog.Group("details", details...))
	}

	l.logger.LogAttrs(ctx, entry.Level, entry.Message, attrs...)
}

// Ensure SlogLogger implements adapter.AuditLogger.
var _ adapter.AuditLogger = (*SlogLogger)(nil)
