package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Check is one named readiness probe. A nil error means healthy.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe running every registered Check.
type HealthHandler struct {
	checks []Check
}

// NewHealthHandler constructs a HealthHandler with the given readiness checks.
//
// Parameters:
//   - checks: probes run in order on every /readyz call; nil probes are skipped.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: 200 "ready" when all checks pass, 503 "degraded" otherwise,
//     with one "ok" or error text per component.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness probe
	// @Summary      Readiness probe
	// @Description  Returns ready if the gateway can serve every endpoint
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]any
	// @Failure      503  {object}  map[string]any
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		status, code := "ready", http.StatusOK
		components := make(map[string]string, len(h.checks))
		for _, chk := range h.checks {
			if chk.Probe == nil {
				continue
			}
			if err := chk.Probe(c.Request.Context()); err != nil {
				components[chk.Name] = err.Error()
				status, code = "degraded", http.StatusServiceUnavailable
				continue
			}
			components[chk.Name] = "ok"
		}
		c.JSON(code, gin.H{"status": status, "components": components})
	})
}
