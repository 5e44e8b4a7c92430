package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Independent(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	a := NewMetrics()
	b := NewMetrics()
	require.NotSame(t, a.Registry, b.Registry)
}

func TestObserveHelpers(t *testing.T) {
	m := NewMetrics()

	m.ObserveUpstream("brapi", "success", 20*time.Millisecond)
	m.ObserveUpstream("brapi", "success", 10*time.Millisecond)
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)
	m.ObserveTickerRefresh(nil)
	m.ObserveTickerRefresh(errors.New("down"))
	m.ObserveHTTP("/v1/currencies", "GET", 200, time.Millisecond)
	m.ObserveHTTP("/v1/currencies", "GET", 204, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("brapi", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TickerRefreshesTotal.WithLabelValues("failure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/v1/currencies", "GET", "2xx")))
}

func TestNilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveUpstream("frankfurter", "failure", time.Second)
	m.ObserveCache(true)
	m.ObserveTickerRefresh(nil)
	m.ObserveHTTP("/", "GET", 200, time.Second)
}

func TestHandler_Exposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveCache(true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "response_cache_lookups_total"))
}
