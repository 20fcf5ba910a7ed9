// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck probes one dependency. A nil error means healthy.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]HealthCheck
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		checks: checks,
	}
}

// Check handles GET /health requests.
// The status is "degraded" when any dependency check fails.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(names)),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			response.Dependencies[name] = "disconnected"
			response.Status = "degraded"
			continue
		}
		response.Dependencies[name] = "connected"
	}

	c.JSON(http.StatusOK, response)
}
