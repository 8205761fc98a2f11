package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /health: Basic liveness probe (always returns 200 OK with a timestamp).
//   - /readyz: Readiness probe (depends on upstream provider reachability).
type HealthHandler struct {
	upstreamPing func(ctx context.Context) error // Checks upstream reachability
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - upstreamPing: a function used to check if the upstream fund-data
//     provider is reachable. Typically the client's Ping method.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(upstreamPing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{upstreamPing: upstreamPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /health: Always returns 200 OK, with the current server time.
//   - GET /readyz: Returns 200 OK if the upstream ping succeeds, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /health [get]
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Readiness probe (checks the upstream provider)
	// @Summary      Readiness probe
	// @Description  Returns ready if the upstream fund-data provider is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.upstreamPing != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if h.upstreamPing(ctx) != nil {
				c.JSON(503, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
