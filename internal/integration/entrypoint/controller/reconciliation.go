// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/usecase/reconciliation"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/dto"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/middleware"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	matchUseCase      *reconciliation.MatchTransactionsUseCase
	duplicatesUseCase *reconciliation.FindDuplicatesUseCase
	statsUseCase      *reconciliation.GetMatchingStatsUseCase
	criteria          valueobject.MatchCriteria
	duplicateCriteria valueobject.DuplicateCriteria
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	matchUseCase *reconciliation.MatchTransactionsUseCase,
	duplicatesUseCase *reconciliation.FindDuplicatesUseCase,
	statsUseCase *reconciliation.GetMatchingStatsUseCase,
	criteria valueobject.MatchCriteria,
	duplicateCriteria valueobject.DuplicateCriteria,
) *ReconciliationController {
	return &ReconciliationController{
		matchUseCase:      matchUseCase,
		duplicatesUseCase: duplicatesUseCase,
		statsUseCase:      statsUseCase,
		criteria:          criteria,
		duplicateCriteria: duplicateCriteria,
	}
}

// Reconcile handles POST /reconciliation/connections/:connectionId/reconcile requests.
func (c *ReconciliationController) Reconcile(ctx *gin.Context) {
	tenantID, connectionID, ok := c.scope(ctx)
	if !ok {
		return
	}

	var req dto.ReconcileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidCriteria),
			Details: err.Error(),
		})
		return
	}
	criteria, err := req.Apply(c.criteria)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid amount tolerance",
			Code:    string(domainerror.ErrCodeInvalidCriteria),
			Details: err.Error(),
		})
		return
	}

	result, err := c.matchUseCase.Execute(ctx.Request.Context(), reconciliation.MatchTransactionsInput{
		ConnectionID: connectionID,
		TenantID:     tenantID,
		Criteria:     criteria,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReconcileResponse(result))
}

// GetDuplicates handles GET /reconciliation/connections/:connectionId/duplicates requests.
func (c *ReconciliationController) GetDuplicates(ctx *gin.Context) {
	tenantID, connectionID, ok := c.scope(ctx)
	if !ok {
		return
	}

	criteria := c.duplicateCriteria
	records, err := c.duplicatesUseCase.Execute(ctx.Request.Context(), reconciliation.FindDuplicatesInput{
		ConnectionID: connectionID,
		TenantID:     tenantID,
		Criteria:     &criteria,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDuplicatesResponse(records))
}

// GetStats handles GET /reconciliation/connections/:connectionId/stats requests.
func (c *ReconciliationController) GetStats(ctx *gin.Context) {
	tenantID, connectionID, ok := c.scope(ctx)
	if !ok {
		return
	}

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), reconciliation.GetMatchingStatsInput{
		ConnectionID: connectionID,
		TenantID:     tenantID,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchingStatsResponse(stats))
}

// scope resolves the tenant from the token and the connection from the path.
func (c *ReconciliationController) scope(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Tenant not authenticated",
			Code:  string(domainerror.ErrCodeMissingTenant),
		})
		return uuid.Nil, uuid.Nil, false
	}

	connectionID, err := uuid.Parse(ctx.Param("connectionId"))
	if err != nil || connectionID == uuid.Nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid connection ID format",
			Code:  string(domainerror.ErrCodeInvalidConnectionID),
		})
		return uuid.Nil, uuid.Nil, false
	}

	return tenantID, connectionID, true
}

// handleReconciliationError maps reconciliation errors to HTTP responses.
func (c *ReconciliationController) handleReconciliationError(ctx *gin.Context, err error) {
	var recErr *domainerror.ReconciliationError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForReconciliationError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReconciliationError maps error codes to HTTP status codes.
func (c *ReconciliationController) getStatusCodeForReconciliationError(code domainerror.ReconciliationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidConnectionID,
		domainerror.ErrCodeInvalidCriteria:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionAlreadyMatched,
		domainerror.ErrCodeJobAlreadyRunning:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
