package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finance-gateway/config"
	"github.com/guttosm/finance-gateway/internal/api"
	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/logger"
	"github.com/guttosm/finance-gateway/internal/metrics"
	"github.com/guttosm/finance-gateway/internal/service"
	"github.com/guttosm/finance-gateway/internal/tickers"
	"github.com/guttosm/finance-gateway/internal/upstream"
	"github.com/guttosm/finance-gateway/internal/validation"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Prometheus collectors and the two provider clients.
//   - Creates the ticker directory shared by validation and /v1/b3stocks/all.
//   - Wires validator, services, handler and router.
//   - Registers health and readiness probes.
//   - Schedules the ticker directory warm-up job.
//   - Provides a cleanup function that stops the scheduler.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	m := metrics.NewMetrics()

	frankfurter := upstream.NewFrankfurter(cfg.Upstream.FrankfurterURL, cfg.Upstream.Timeout, m)
	brapi := upstream.NewBrapi(cfg.Upstream.BrapiURL, cfg.Upstream.BrapiAPIKey, cfg.Upstream.Timeout, m)
	if !brapi.HasCredential() {
		logger.L().Warn().Str("key", upstream.BrapiKeyName).Msg("brapi credential missing, stock endpoints will answer 503")
	}

	directory := tickers.NewDirectory(brapi, cfg.Tickers.CacheTTL,
		tickers.WithMetrics(m),
		tickers.WithRefreshTimeout(cfg.Upstream.Timeout),
	)

	handler := api.NewHandler(
		validation.New(directory, nil),
		service.NewConversionService(frankfurter),
		service.NewStockService(brapi, directory),
	)

	router := api.NewRouter(handler, api.RouterOptions{
		Metrics:         m,
		ConversionTTL:   cfg.Cache.ConversionTTL,
		StocksTTL:       cfg.Cache.StocksTTL,
		CacheMaxEntries: cfg.Cache.MaxEntries,
	})

	api.NewHealthHandler(api.Check{
		Name: "brapi_credential",
		Probe: func(context.Context) error {
			if !brapi.HasCredential() {
				return apperr.MissingCredential(upstream.BrapiKeyName)
			}
			return nil
		},
	}).Register(router)

	// Warming needs the credential; without it every refresh would fail.
	spec := cfg.Tickers.WarmupSpec
	if !brapi.HasCredential() {
		spec = ""
	}
	// indirection for unit testing
	stop, err := warmupScheduler(spec, directory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to schedule ticker warm-up: %w", err)
	}

	return router, stop, nil
}
