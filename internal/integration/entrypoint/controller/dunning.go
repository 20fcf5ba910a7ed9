// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerline/receivables/internal/application/usecase/dunning"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/dto"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/middleware"
)

// DunningController handles dunning endpoints.
type DunningController struct {
	processUseCase *dunning.ProcessDunningUseCase
	statusUseCase  *dunning.GetDunningStatusUseCase
	agingUseCase   *dunning.GetInvoiceAgingUseCase
	config         valueobject.DunningConfig
}

// NewDunningController creates a new dunning controller instance.
func NewDunningController(
	processUseCase *dunning.ProcessDunningUseCase,
	statusUseCase *dunning.GetDunningStatusUseCase,
	agingUseCase *dunning.GetInvoiceAgingUseCase,
	config valueobject.DunningConfig,
) *DunningController {
	return &DunningController{
		processUseCase: processUseCase,
		statusUseCase:  statusUseCase,
		agingUseCase:   agingUseCase,
		config:         config,
	}
}

// Run handles POST /dunning/run requests.
func (c *DunningController) Run(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	result, err := c.processUseCase.Execute(ctx.Request.Context(), dunning.ProcessDunningInput{
		TenantID: tenantID,
		Config:   c.config,
	})
	if err != nil {
		c.handleDunningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDunningResultResponse(result))
}

// GetStatus handles GET /dunning/invoices/:invoiceId/status requests.
func (c *DunningController) GetStatus(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("invoiceId"))
	if err != nil {
		c.handleDunningError(ctx, domainerror.NewDunningError(
			domainerror.ErrCodeInvalidInvoiceID, "Invalid invoice ID format", domainerror.ErrInvalidInvoiceID,
		))
		return
	}

	status, err := c.statusUseCase.Execute(ctx.Request.Context(), invoiceID)
	if err != nil {
		c.handleDunningError(ctx, err)
		return
	}
	// Invoices of other tenants are reported as missing.
	if status.TenantID != tenantID {
		c.handleDunningError(ctx, domainerror.NewDunningError(
			domainerror.ErrCodeInvoiceNotFound, "invoice not found", domainerror.ErrInvoiceNotFound,
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDunningStatusResponse(status))
}

// GetAging handles GET /dunning/aging requests.
func (c *DunningController) GetAging(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	buckets, err := c.agingUseCase.Execute(ctx.Request.Context(), tenantID)
	if err != nil {
		c.handleDunningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgingResponse(buckets))
}

func requireTenant(ctx *gin.Context) (uuid.UUID, bool) {
	tenantID, ok := middleware.GetTenantIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Tenant not authenticated",
			Code:  string(domainerror.ErrCodeMissingTenant),
		})
	}
	return tenantID, ok
}

// handleDunningError maps dunning errors to HTTP responses.
func (c *DunningController) handleDunningError(ctx *gin.Context, err error) {
	var dunErr *domainerror.DunningError
	if errors.As(err, &dunErr) {
		status := http.StatusInternalServerError
		switch dunErr.Code {
		case domainerror.ErrCodeInvalidInvoiceID:
			status = http.StatusBadRequest
		case domainerror.ErrCodeInvoiceNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeDunningCancelled:
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dunErr.Message,
			Code:  string(dunErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
