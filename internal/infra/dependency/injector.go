// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledgerline/receivables/config"
	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/usecase/dunning"
	"github.com/ledgerline/receivables/internal/application/usecase/reconciliation"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/infra/server/router"
	"github.com/ledgerline/receivables/internal/integration/adapters"
	"github.com/ledgerline/receivables/internal/integration/audit"
	"github.com/ledgerline/receivables/internal/integration/email"
	"github.com/ledgerline/receivables/internal/integration/email/templates"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/controller"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/middleware"
	"github.com/ledgerline/receivables/internal/integration/gateway"
	"github.com/ledgerline/receivables/internal/integration/jobs"
	"github.com/ledgerline/receivables/internal/integration/lock"
	"github.com/ledgerline/receivables/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	TokenService adapter.TokenService
	EmailWorker  *email.Worker
	JobRunner    *jobs.Runner // nil without Redis

	MatchTransactions *reconciliation.MatchTransactionsUseCase
	FindDuplicates    *reconciliation.FindDuplicatesUseCase
	MatchingStats     *reconciliation.GetMatchingStatsUseCase
	ProcessDunning    *dunning.ProcessDunningUseCase
	DunningStatus     *dunning.GetDunningStatusUseCase
	InvoiceAging      *dunning.GetInvoiceAgingUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case the periodic job runner is not built.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient, healthChecks map[string]controller.HealthCheck) (*Injector, error) {
	// Create repositories
	transactionRepo := persistence.NewBankTransactionRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	paymentMethodRepo := persistence.NewPaymentMethodRepository(db)
	attemptRepo := persistence.NewPaymentAttemptRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	auditLogger := audit.NewSlogLogger(slog.Default())
	notifier := email.NewNotifier(emailQueueRepo, cfg.Email.AppBaseURL)

	var paymentGateway adapter.PaymentGateway
	if cfg.Stripe.SecretKey != "" {
		paymentGateway = gateway.NewStripeGateway(cfg.Stripe.SecretKey)
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set, payment retries will be recorded as failed")
	}
	executor := dunning.NewPaymentRetryExecutor(paymentGateway)

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, dunning emails will only be logged")
		sender = email.LogSender{}
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	matchCriteria := MatchCriteria(cfg)
	duplicateCriteria := DuplicateCriteria(cfg)
	dunningConfig := DunningConfig(cfg)

	// Create reconciliation use cases
	matchUseCase := reconciliation.NewMatchTransactionsUseCase(transactionRepo, invoiceRepo, auditLogger, nil)
	duplicatesUseCase := reconciliation.NewFindDuplicatesUseCase(transactionRepo)
	statsUseCase := reconciliation.NewGetMatchingStatsUseCase(transactionRepo, invoiceRepo)

	// Create dunning use cases
	processUseCase := dunning.NewProcessDunningUseCase(invoiceRepo, paymentMethodRepo, attemptRepo, executor, notifier, auditLogger, nil)
	statusUseCase := dunning.NewGetDunningStatusUseCase(invoiceRepo, attemptRepo, dunningConfig, nil)
	agingUseCase := dunning.NewGetInvoiceAgingUseCase(invoiceRepo, nil)

	var runner *jobs.Runner
	if redisClient != nil {
		runner = jobs.NewRunner(invoiceRepo, transactionRepo, lock.NewRedisLocker(redisClient), processUseCase, matchUseCase, jobs.RunnerConfig{
			Interval:  cfg.Jobs.Interval,
			LockTTL:   cfg.Jobs.LockTTL,
			TenantIDs: TenantIDs(cfg),
			Dunning:   dunningConfig,
			Criteria:  matchCriteria,
		})
	}

	// Create controllers
	healthController := controller.NewHealthController(healthChecks)
	reconciliationController := controller.NewReconciliationController(
		matchUseCase,
		duplicatesUseCase,
		statsUseCase,
		matchCriteria,
		duplicateCriteria,
	)
	dunningController := controller.NewDunningController(
		processUseCase,
		statusUseCase,
		agingUseCase,
		dunningConfig,
	)

	// Create middleware
	triggerRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		reconciliationController,
		dunningController,
		triggerRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		TokenService:      tokenService,
		EmailWorker:       emailWorker,
		JobRunner:         runner,
		MatchTransactions: matchUseCase,
		FindDuplicates:    duplicatesUseCase,
		MatchingStats:     statsUseCase,
		ProcessDunning:    processUseCase,
		DunningStatus:     statusUseCase,
		InvoiceAging:      agingUseCase,
	}, nil
}

// MatchCriteria maps reconciliation settings to matching criteria.
func MatchCriteria(cfg *config.Config) valueobject.MatchCriteria {
	return valueobject.MatchCriteria{
		AmountTolerance:     cfg.Reconciliation.AmountTolerance,
		DateWindowDays:      cfg.Reconciliation.DateWindowDays,
		AcceptanceThreshold: cfg.Reconciliation.AcceptanceThreshold,
	}.WithDefaults()
}

// DuplicateCriteria maps reconciliation settings to duplicate detection criteria.
func DuplicateCriteria(cfg *config.Config) valueobject.DuplicateCriteria {
	criteria := valueobject.DefaultDuplicateCriteria()
	if cfg.Reconciliation.DuplicateSimilarity > 0 {
		criteria.SimilarityThreshold = cfg.Reconciliation.DuplicateSimilarity
	}
	if cfg.Reconciliation.DuplicateWindow > 0 {
		criteria.Window = cfg.Reconciliation.DuplicateWindow
	}
	return criteria
}

// DunningConfig maps dunning settings to the retry and escalation schedule.
func DunningConfig(cfg *config.Config) valueobject.DunningConfig {
	return valueobject.DunningConfig{
		MaxRetries:              cfg.Dunning.MaxRetries,
		RetryIntervalDays:       cfg.Dunning.RetryIntervalDays,
		RetryToleranceDays:      cfg.Dunning.RetryToleranceDays,
		EscalationThresholdDays: cfg.Dunning.EscalationThresholdDays,
		NotificationChannels:    cfg.Dunning.NotificationChannels,
	}.WithDefaults()
}

// TenantIDs parses the configured tenant allow-list. Malformed entries are
// logged and skipped.
func TenantIDs(cfg *config.Config) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cfg.Jobs.TenantIDs))
	for _, raw := range cfg.Jobs.TenantIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("Ignoring malformed tenant ID in JOBS_TENANT_IDS", "value", raw, "error", err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
