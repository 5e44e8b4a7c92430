package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/metrics"
)

func TestParams_DropsAbsentValues(t *testing.T) {
	p := Params{"base": "USD", "symbols": "", "amount": "10"}
	assert.Equal(t, "amount=10&base=USD", p.encode())
	assert.Equal(t, "", Params(nil).encode())
}

func TestBuildURL_AddsLeadingSlash(t *testing.T) {
	c := newJSONClient("x", "https://example.test/", time.Second, nil)
	assert.Equal(t, "https://example.test/v1/2025-01-15", c.buildURL("v1/2025-01-15", nil))
	assert.Equal(t, "https://example.test/available?a=1", c.buildURL("/available", Params{"a": "1"}))
}

func TestFrankfurter_Historical(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/2025-01-15", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "BRL,EUR", r.URL.Query().Get("symbols"))
		assert.Equal(t, "10", r.URL.Query().Get("amount"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"amount":10,"base":"USD","date":"2025-01-15","rates":{"BRL":55.2}}`))
	}))
	defer srv.Close()

	f := NewFrankfurter(srv.URL, time.Second, metrics.NewMetrics())
	out, err := f.Historical(context.Background(), "2025-01-15", RatesQuery{Base: "USD", Symbols: []string{"BRL", "EUR"}, Amount: "10"})
	require.NoError(t, err)
	assert.Equal(t, json.Number("10"), out["amount"])
	assert.Equal(t, "USD", out["base"])
}

func TestFrankfurter_IntervalOmitsSymbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/2025-01-01..2025-01-31", r.URL.Path)
		_, present := r.URL.Query()["symbols"]
		assert.False(t, present, "symbols must not be sent when absent")
		_, _ = w.Write([]byte(`{"amount":1,"base":"EUR","start_date":"2025-01-01","end_date":"2025-01-31","rates":{}}`))
	}))
	defer srv.Close()

	f := NewFrankfurter(srv.URL, time.Second, nil)
	out, err := f.Interval(context.Background(), "2025-01-01", "2025-01-31", RatesQuery{Base: "EUR", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, "EUR", out["base"])
}

func TestFrankfurter_PropagatesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()

	f := NewFrankfurter(srv.URL, time.Second, nil)
	_, err := f.Historical(context.Background(), "1800-01-01", RatesQuery{Base: "USD"})
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindUpstream, ae.Kind)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus())
	assert.Contains(t, ae.Message, "not found")
}

func TestFrankfurter_TimeoutIsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewFrankfurter(srv.URL, 20*time.Millisecond, nil)
	_, err := f.Historical(context.Background(), "2025-01-15", RatesQuery{Base: "USD"})
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindUpstream, ae.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, ae.HTTPStatus())
	assert.True(t, isTimeout(ae.Err))
}

func TestBrapi_MissingCredentialSkipsNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	b := NewBrapi(srv.URL, "", time.Second, nil)
	assert.False(t, b.HasCredential())

	_, err := b.Available(context.Background())
	assert.True(t, apperr.IsKind(err, apperr.KindMissingCredential))
	_, err = b.Quote(context.Background(), "PETR4", QuoteQuery{})
	assert.True(t, apperr.IsKind(err, apperr.KindMissingCredential))
	_, err = b.List(context.Background(), ListQuery{})
	assert.True(t, apperr.IsKind(err, apperr.KindMissingCredential))

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestBrapi_UnauthorizedIsInvalidCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":true,"message":"invalid token"}`))
	}))
	defer srv.Close()

	b := NewBrapi(srv.URL, "bad-token", time.Second, nil)
	_, err := b.Available(context.Background())
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindInvalidCredential, ae.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, ae.HTTPStatus())
	assert.Equal(t, apperr.UnavailableMessage, ae.PublicMessage())
}

func TestBrapi_OtherStatusIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	b := NewBrapi(srv.URL, "token", time.Second, nil)
	_, err := b.Quote(context.Background(), "XXXX3", QuoteQuery{})
	ae := apperr.From(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindUpstream, ae.Kind)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus())
}

func TestBrapi_AvailableQuoteAndList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		q := r.URL.Query()
		switch r.URL.Path {
		case "/available":
			_, _ = w.Write([]byte(`{"indexes":["^BVSP"],"stocks":["PETR4","VALE3"]}`))
		case "/quote/PETR4":
			assert.Equal(t, "5d", q.Get("range"))
			assert.Equal(t, "1d", q.Get("interval"))
			assert.Equal(t, "true", q.Get("fundamental"))
			_, present := q["dividends"]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"results":[{"symbol":"PETR4","regularMarketPrice":38.1}],"requestedAt":"x"}`))
		case "/quote/list":
			assert.Equal(t, "Finance", q.Get("sector"))
			assert.Equal(t, "volume", q.Get("sortBy"))
			assert.Equal(t, "desc", q.Get("sortOrder"))
			assert.Equal(t, "2", q.Get("page"))
			assert.Equal(t, "stock", q.Get("type"))
			_, present := q["limit"]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"stocks":[{"stock":"ITUB4"}],"currentPage":2}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	b := NewBrapi(srv.URL, "secret", time.Second, nil)
	ctx := context.Background()

	stocks, err := b.Available(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PETR4", "VALE3"}, stocks)

	yes := true
	results, err := b.Quote(ctx, "PETR4", QuoteQuery{Range: "5d", Interval: "1d", Fundamental: &yes})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"symbol":"PETR4","regularMarketPrice":38.1}]`, string(results))

	list, err := b.List(ctx, ListQuery{Sector: "Finance", SortBy: "volume", SortOrder: "desc", Page: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stocks":[{"stock":"ITUB4"}],"currentPage":2}`, string(list))
}
