// Package dunning contains unpaid invoice retry, escalation and aging use cases.
package dunning

import (
	"time"

	"github.com/ledgerline/receivables/internal/domain/entity"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// Scheduler decides what a dunning pass should do with an invoice of a given age.
type Scheduler struct {
	config valueobject.DunningConfig
}

// NewScheduler creates a Scheduler for the given schedule.
func NewScheduler(config valueobject.DunningConfig) *Scheduler {
	return &Scheduler{config: config.WithDefaults()}
}

// Decide evaluates the schedule in order: escalation first, then retry windows.
func (s *Scheduler) Decide(createdAt, now time.Time) valueobject.DunningDecision {
	days := entity.DaysBetween(createdAt, now)

	if days >= s.config.EscalationThresholdDays {
		return valueobject.DunningDecision{
			Action:           valueobject.DunningActionEscalate,
			DaysSinceCreated: days,
		}
	}

	if slots := s.RetrySlots(days); len(slots) > 0 {
		return valueobject.DunningDecision{
			Action:           valueobject.DunningActionRetry,
			DaysSinceCreated: days,
			RetryInterval:    slots[0],
		}
	}

	return valueobject.DunningDecision{
		Action:           valueobject.DunningActionNoOp,
		DaysSinceCreated: days,
	}
}

// RetrySlots returns every configured interval within tolerance of days, in schedule order.
func (s *Scheduler) RetrySlots(days int) []int {
	var slots []int
	for _, interval := range s.config.RetryIntervalDays {
		diff := days - interval
		if diff < 0 {
			diff = -diff
		}
		if diff <= s.config.RetryToleranceDays {
			slots = append(slots, interval)
		}
	}
	return slots
}

// NextRetryDue returns the first interval not earlier than days.
func (s *Scheduler) NextRetryDue(days int) (int, bool) {
	for _, interval := range s.config.RetryIntervalDays {
		if interval >= days {
			return interval, true
		}
	}
	return 0, false
}

// Config returns the effective schedule.
func (s *Scheduler) Config() valueobject.DunningConfig {
	return s.config
}
