package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finance-gateway/internal/cache"
	"github.com/guttosm/finance-gateway/internal/metrics"
)

const (
	// CacheStatusKey holds "HIT" or "MISS" in the Gin context of cached routes.
	CacheStatusKey = "cache_status"
	// CacheHeader exposes the cache status to clients.
	CacheHeader = "X-Cache"
)

// CachedResponse is one stored 200 response.
type CachedResponse struct {
	ContentType string
	Body        []byte
}

// bodyRecorder tees the response body so it can be stored after the
// handler chain finishes.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// cacheKey is the request path plus its query arguments sorted by name, so
// argument order does not split the cache.
func cacheKey(r *http.Request) string {
	q := r.URL.Query().Encode()
	if q == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + q
}

// ResponseCache serves GET requests from store, keyed on the request path
// and its sorted query arguments.
//
// Behavior:
//   - Hit: the stored body is written with status 200 and the chain stops.
//   - Miss: the chain runs; only a 200 answer is stored, so failures are
//     always retried upstream.
//   - Non-GET requests pass through untouched.
//
// Parameters:
//   - store: bounded TTL store owned by the route group (one per TTL).
//   - m: optional collectors for hit/miss counts.
func ResponseCache(store *cache.Store[CachedResponse], m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c.Request)
		if cached, ok := store.Get(key); ok {
			m.ObserveCache(true)
			c.Set(CacheStatusKey, "HIT")
			c.Header(CacheHeader, "HIT")
			c.Data(http.StatusOK, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		m.ObserveCache(false)
		c.Set(CacheStatusKey, "MISS")
		c.Header(CacheHeader, "MISS")

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if rec.Status() == http.StatusOK {
			store.Set(key, CachedResponse{
				ContentType: rec.Header().Get("Content-Type"),
				Body:        bytes.Clone(rec.body.Bytes()),
			})
		}
	}
}
