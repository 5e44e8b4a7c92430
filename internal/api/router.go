package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/finance-gateway/internal/cache"
	"github.com/guttosm/finance-gateway/internal/domain/dto"
	"github.com/guttosm/finance-gateway/internal/metrics"
	"github.com/guttosm/finance-gateway/internal/middleware"
)

// NotFoundMessage is the error envelope text for unknown routes.
const NotFoundMessage = "404 Not Found: The requested URL was not found on the server. " +
	"If you entered the URL manually please check your spelling and try again."

// DefaultRequestTimeout bounds every request's context.
const DefaultRequestTimeout = 15 * time.Second

// RouterOptions tunes NewRouter. Zero values are valid.
//
// Fields:
//   - Metrics: collectors for HTTP and cache metrics; nil disables /metrics.
//   - ConversionTTL: response cache lifetime of the conversion routes.
//   - StocksTTL: response cache lifetime of the b3stocks routes.
//   - CacheMaxEntries: capacity of each response cache (cache.DefaultMaxEntries when zero).
//   - RequestTimeout: per-request context deadline (DefaultRequestTimeout when zero).
type RouterOptions struct {
	Metrics         *metrics.Metrics
	ConversionTTL   time.Duration
	StocksTTL       time.Duration
	CacheMaxEntries int
	RequestTimeout  time.Duration
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Metrics, Recovery, ErrorHandler).
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures the v1 routes, each group behind its own response cache.
//   - Answers unknown routes with the 404 error envelope.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.HTTPMetrics(opts.Metrics),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// ─── Not found ────────────────────────────────
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, NotFoundMessage))
	})

	// ─── API ──────────────────────────────────────
	router.GET("/", handler.Info)

	v1 := router.Group("/v1")
	{
		v1.GET("/currencies", handler.Currencies)

		conversion := v1.Group("/conversion",
			middleware.ResponseCache(cache.NewStore[middleware.CachedResponse](opts.ConversionTTL, opts.CacheMaxEntries, nil), opts.Metrics))
		conversion.GET("/historical", handler.HistoricalConversion)
		conversion.GET("/interval", handler.IntervalConversion)

		stocks := v1.Group("/b3stocks",
			middleware.ResponseCache(cache.NewStore[middleware.CachedResponse](opts.StocksTTL, opts.CacheMaxEntries, nil), opts.Metrics))
		stocks.GET("/all", handler.AllStocks)
		stocks.GET("/quote", handler.StockQuote)
		stocks.GET("/stocksinfo", handler.StockListing)
	}

	return router
}
