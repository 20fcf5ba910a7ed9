// Package valueobject contains domain value objects for the receivables system.
package valueobject

// DunningAction is the outcome of evaluating an invoice against the schedule.
type DunningAction string

const (
	DunningActionNoOp     DunningAction = "no-op"
	DunningActionRetry    DunningAction = "retry"
	DunningActionEscalate DunningAction = "escalate"
)

// NotificationReason explains why a dunning notice is sent.
type NotificationReason string

const (
	ReasonPaymentFailed   NotificationReason = "payment_failed"
	ReasonNoPaymentMethod NotificationReason = "no_payment_method"
	ReasonEscalated       NotificationReason = "escalated"
)

// DunningConfig contains the retry and escalation schedule.
type DunningConfig struct {
	MaxRetries              int
	RetryIntervalDays       []int // Days after creation: [1, 3, 7]
	RetryToleranceDays      int   // ±1 absorbs batch-run jitter
	EscalationThresholdDays int   // 14
	NotificationChannels    []string
}

// DefaultDunningConfig returns the default dunning schedule.
func DefaultDunningConfig() DunningConfig {
	return DunningConfig{
		MaxRetries:              3,
		RetryIntervalDays:       []int{1, 3, 7},
		RetryToleranceDays:      1,
		EscalationThresholdDays: 14,
		NotificationChannels:    []string{"email"},
	}
}

// WithDefaults fills zero-valued fields from DefaultDunningConfig.
// RetryToleranceDays is left as-is because zero is a meaningful tolerance.
func (c DunningConfig) WithDefaults() DunningConfig {
	defaults := DefaultDunningConfig()
	if c.MaxRetries == 0 {
		c.MaxRetries = defaults.MaxRetries
	}
	if len(c.RetryIntervalDays) == 0 {
		c.RetryIntervalDays = defaults.RetryIntervalDays
	}
	if c.EscalationThresholdDays == 0 {
		c.EscalationThresholdDays = defaults.EscalationThresholdDays
	}
	if len(c.NotificationChannels) == 0 {
		c.NotificationChannels = defaults.NotificationChannels
	}
	return c
}

// DunningDecision is the per-invoice verdict for one pass.
type DunningDecision struct {
	Action           DunningAction
	DaysSinceCreated int
	RetryInterval    int // Schedule offset that triggered a retry; zero otherwise
}

// DunningResult contains counters from a dunning pass.
type DunningResult struct {
	Processed int
	Retried   int
	Escalated int
	Failed    int
	Skipped   int // Retries suppressed because the schedule slot was already attempted
	Errors    []string
}
