// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerline/receivables/internal/integration/entrypoint/controller"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	reconciliationController *controller.ReconciliationController
	dunningController        *controller.DunningController
	triggerRateLimiter       *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reconciliationController *controller.ReconciliationController,
	dunningController *controller.DunningController,
	triggerRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		reconciliationController: reconciliationController,
		dunningController:        dunningController,
		triggerRateLimiter:       triggerRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires a
// service token; job triggers are also rate limited per tenant.
func (r *Router) setupAPIRoutes() {
	if r.authMiddleware == nil {
		return
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.reconciliationController != nil {
			connections := v1.Group("/reconciliation/connections/:connectionId")
			{
				connections.POST("/reconcile", r.trigger(), r.reconciliationController.Reconcile)
				connections.GET("/duplicates", r.reconciliationController.GetDuplicates)
				connections.GET("/stats", r.reconciliationController.GetStats)
			}
		}

		if r.dunningController != nil {
			dunning := v1.Group("/dunning")
			{
				dunning.POST("/run", r.trigger(), r.dunningController.Run)
				dunning.GET("/invoices/:invoiceId/status", r.dunningController.GetStatus)
				dunning.GET("/aging", r.dunningController.GetAging)
			}
		}
	}
}

func (r *Router) trigger() gin.HandlerFunc {
	if r.triggerRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.triggerRateLimiter.Middleware()
}
