// Package jobs runs the periodic reconciliation and dunning batches.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/usecase/dunning"
	"github.com/ledgerline/receivables/internal/application/usecase/reconciliation"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/integration/lock"
)

// Job names used in lock keys.
const (
	JobDunning   = "dunning"
	JobReconcile = "reconcile"
)

// DunningProcessor runs one dunning pass for a tenant.
type DunningProcessor interface {
	Execute(ctx context.Context, input dunning.ProcessDunningInput) (*valueobject.DunningResult, error)
}

// TransactionMatcher runs one reconciliation pass for a bank connection.
type TransactionMatcher interface {
	Execute(ctx context.Context, input reconciliation.MatchTransactionsInput) (*valueobject.ReconciliationResult, error)
}

// RunnerConfig holds configuration for the job runner.
type RunnerConfig struct {
	Interval  time.Duration
	LockTTL   time.Duration
	TenantIDs []uuid.UUID // Empty means discover tenants with pending work per job
	Dunning   valueobject.DunningConfig
	Criteria  valueobject.MatchCriteria
}

// RunSummary counts what one tick did.
type RunSummary struct {
	Tenants        int
	DunningRuns    int
	ReconcileRuns  int
	LocksContended int
	Failures       int
}

// Runner drives dunning and reconciliation for every tenant on a fixed interval.
type Runner struct {
	invoiceRepo     adapter.InvoiceRepository
	transactionRepo adapter.BankTransactionRepository
	locker          adapter.JobLocker
	dunning         DunningProcessor
	matcher         TransactionMatcher
	config          RunnerConfig
}

// NewRunner creates a new job runner.
func NewRunner(
	invoiceRepo adapter.InvoiceRepository,
	transactionRepo adapter.BankTransactionRepository,
	locker adapter.JobLocker,
	dunningProcessor DunningProcessor,
	matcher TransactionMatcher,
	config RunnerConfig,
) *Runner {
	if config.Interval <= 0 {
		config.Interval = 24 * time.Hour
	}
	if config.LockTTL <= 0 {
		config.LockTTL = 30 * time.Minute
	}
	return &Runner{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		locker:          locker,
		dunning:         dunningProcessor,
		matcher:         matcher,
		config:          config,
	}
}

// Start runs a batch immediately and then on every tick. It blocks until ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	slog.Info("Job runner started", "interval", r.config.Interval, "lock_ttl", r.config.LockTTL)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	r.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Job runner shutting down")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce processes every tenant a single time.
func (r *Runner) RunOnce(ctx context.Context) RunSummary {
	var summary RunSummary

	plan, err := r.plan(ctx)
	if err != nil {
		slog.Error("Failed to list tenants for batch jobs", "error", err)
		summary.Failures++
		return summary
	}

	for _, tenantID := range plan.tenants {
		if ctx.Err() != nil {
			break
		}
		summary.Tenants++
		if plan.dunning[tenantID] {
			r.runDunning(ctx, tenantID, &summary)
		}
		if plan.reconcile[tenantID] {
			r.runReconciliation(ctx, tenantID, &summary)
		}
	}

	slog.Info("Batch jobs completed",
		"tenants", summary.Tenants,
		"dunning_runs", summary.DunningRuns,
		"reconcile_runs", summary.ReconcileRuns,
		"locks_contended", summary.LocksContended,
		"failures", summary.Failures,
	)
	return summary
}

// tickPlan lists the tenants of one tick and which jobs each one needs.
type tickPlan struct {
	tenants   []uuid.UUID
	dunning   map[uuid.UUID]bool
	reconcile map[uuid.UUID]bool
}

func (p *tickPlan) add(tenantID uuid.UUID, jobs map[uuid.UUID]bool) {
	if !p.dunning[tenantID] && !p.reconcile[tenantID] {
		p.tenants = append(p.tenants, tenantID)
	}
	jobs[tenantID] = true
}

// plan runs dunning for tenants with UNPAID invoices and reconciliation for
// tenants with unmatched credits. Configured tenants get both jobs.
func (r *Runner) plan(ctx context.Context) (*tickPlan, error) {
	p := &tickPlan{
		dunning:   make(map[uuid.UUID]bool),
		reconcile: make(map[uuid.UUID]bool),
	}

	if len(r.config.TenantIDs) > 0 {
		for _, tenantID := range r.config.TenantIDs {
			p.add(tenantID, p.dunning)
			p.add(tenantID, p.reconcile)
		}
		return p, nil
	}

	unpaid, err := r.invoiceRepo.ListTenantIDsWithUnpaid(ctx)
	if err != nil {
		return nil, err
	}
	unmatched, err := r.transactionRepo.ListTenantIDsWithUnmatched(ctx)
	if err != nil {
		return nil, err
	}

	for _, tenantID := range unpaid {
		p.add(tenantID, p.dunning)
	}
	for _, tenantID := range unmatched {
		p.add(tenantID, p.reconcile)
	}
	return p, nil
}

func (r *Runner) runDunning(ctx context.Context, tenantID uuid.UUID, summary *RunSummary) {
	logger := slog.With("tenant_id", tenantID.String(), "job", JobDunning)

	err := r.withLock(ctx, lock.JobKey(tenantID, JobDunning), func() error {
		result, err := r.dunning.Execute(ctx, dunning.ProcessDunningInput{
			TenantID: tenantID,
			Config:   r.config.Dunning,
		})
		if err != nil {
			return err
		}
		summary.DunningRuns++
		logger.Info("Dunning job finished",
			"processed", result.Processed,
			"retried", result.Retried,
			"escalated", result.Escalated,
			"failed", result.Failed,
		)
		return nil
	})
	r.report(logger, err, summary)
}

func (r *Runner) runReconciliation(ctx context.Context, tenantID uuid.UUID, summary *RunSummary) {
	logger := slog.With("tenant_id", tenantID.String(), "job", JobReconcile)

	err := r.withLock(ctx, lock.JobKey(tenantID, JobReconcile), func() error {
		connections, err := r.transactionRepo.ListConnectionIDs(ctx, tenantID)
		if err != nil {
			return err
		}
		for _, connectionID := range connections {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			result, err := r.matcher.Execute(ctx, reconciliation.MatchTransactionsInput{
				ConnectionID: connectionID,
				TenantID:     tenantID,
				Criteria:     r.config.Criteria,
			})
			if err != nil {
				logger.Error("Reconciliation failed for connection",
					"connection_id", connectionID.String(),
					"error", err,
				)
				summary.Failures++
				continue
			}
			summary.ReconcileRuns++
			logger.Info("Reconciliation job finished",
				"connection_id", connectionID.String(),
				"matched", result.Matched,
				"attempted", result.Attempted,
			)
		}
		return nil
	})
	r.report(logger, err, summary)
}

// withLock runs fn while holding key. Contention returns ErrLockNotAcquired without running fn.
func (r *Runner) withLock(ctx context.Context, key string, fn func() error) error {
	token, ok, err := r.locker.Acquire(ctx, key, r.config.LockTTL)
	if err != nil {
		return err
	}
	if !ok {
		return domainerror.ErrLockNotAcquired
	}
	defer func() {
		// The job context may already be cancelled; release on a fresh one.
		if err := r.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			slog.Warn("Failed to release job lock", "key", key, "error", err)
		}
	}()
	return fn()
}

func (r *Runner) report(logger *slog.Logger, err error, summary *RunSummary) {
	switch {
	case err == nil:
	case errors.Is(err, domainerror.ErrLockNotAcquired):
		summary.LocksContended++
		logger.Info("Job already running elsewhere, skipping")
	default:
		summary.Failures++
		logger.Error("Batch job failed", "error", err)
	}
}
