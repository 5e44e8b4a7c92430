package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finance-gateway/internal/logger"
)

// RequestLogger is a Gin middleware that writes one structured access log
// line per request.
//
// Fields: request_id, method, path, query, status, latency_ms, client_ip and,
// on cached routes, cache (HIT or MISS). 5xx responses log at error level,
// 4xx at warn, everything else at info.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/v1/currencies status=200 latency_ms=1
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		l := logger.L()
		ev := l.Info()
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		}
		if cs, ok := c.Get(CacheStatusKey); ok {
			ev = ev.Str("cache", toString(cs))
		}

		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
