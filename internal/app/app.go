package app

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fundpulse/config"
	"github.com/guttosm/fundpulse/internal/api"
	"github.com/guttosm/fundpulse/internal/batch"
	"github.com/guttosm/fundpulse/internal/service"
	"github.com/guttosm/fundpulse/internal/upstream"
)

// clientCtor is an indirection for creating the upstream client; tests can
// override this to avoid real network setup.
var clientCtor = func(cfg config.Config) *upstream.HTTPClient {
	return upstream.NewHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream HTTP client from configuration.
//   - Initializes the fund service (per-fund aggregation logic).
//   - Initializes the batch orchestrator (bounded concurrent fan-out).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (pooled connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// The base URL comes from the environment; fail fast on garbage.
	if _, err := url.ParseRequestURI(cfg.Upstream.BaseURL); err != nil {
		return nil, nil, fmt.Errorf("invalid upstream base url %q: %w", cfg.Upstream.BaseURL, err)
	}

	// Upstream data-source client (pooled, shared by all requests)
	client := clientCtor(cfg)

	// Per-fund aggregation service
	svc := service.NewFundService(client, cfg.Trend.Days, cfg.Trend.RecentWindow)

	// Batch orchestrator (bounded concurrency over the service)
	orch := batch.NewOrchestrator(svc, cfg.Batch.MaxCodes, cfg.Batch.Parallel)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, orch)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = client.Close()
	}

	return router, cleanup, nil
}
