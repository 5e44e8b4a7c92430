package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/finance-gateway/config"
)

type countingWarmer struct {
	calls int32
	done  chan struct{}
}

func (w *countingWarmer) Warm(context.Context) error {
	if atomic.AddInt32(&w.calls, 1) == 1 && w.done != nil {
		close(w.done)
	}
	return errors.New("brapi down")
}

func testConfig(frankfurterURL, brapiURL, token string) config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "0"},
		Upstream: config.UpstreamConfig{
			FrankfurterURL: frankfurterURL,
			BrapiURL:       brapiURL,
			BrapiAPIKey:    token,
			Timeout:        time.Second,
		},
		Cache:   config.CacheConfig{ConversionTTL: time.Minute, StocksTTL: time.Minute, MaxEntries: 100},
		Tickers: config.TickerConfig{CacheTTL: time.Hour, WarmupSpec: "@every 3h"},
	}
}

func withConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

func withScheduler(t *testing.T, fn func(spec string, w Warmer) (func(), error)) {
	t.Helper()
	old := warmupScheduler
	warmupScheduler = fn
	t.Cleanup(func() { warmupScheduler = old })
}

func TestScheduleWarmup_Disabled(t *testing.T) {
	for _, spec := range []string{"", "  ", "off", "OFF"} {
		w := &countingWarmer{}
		stop, err := scheduleWarmup(spec, w)
		if err != nil || stop == nil {
			t.Fatalf("spec %q: stop=%p err=%v", spec, stop, err)
		}
		stop()
		if atomic.LoadInt32(&w.calls) != 0 {
			t.Fatalf("spec %q: warmer must not run", spec)
		}
	}
}

func TestScheduleWarmup_InvalidSpec(t *testing.T) {
	if _, err := scheduleWarmup("every now and then", &countingWarmer{}); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
}

func TestScheduleWarmup_RunsOnStart(t *testing.T) {
	w := &countingWarmer{done: make(chan struct{})}
	stop, err := scheduleWarmup("@every 1h", w)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	defer stop()

	select {
	case <-w.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("warm-up did not run on start")
	}
}

type blockingWarmer struct {
	started chan struct{}
	release chan struct{}
}

func (w *blockingWarmer) Warm(context.Context) error {
	close(w.started)
	<-w.release
	return nil
}

func TestScheduleWarmup_StopWaitsForStartupRun(t *testing.T) {
	w := &blockingWarmer{started: make(chan struct{}), release: make(chan struct{})}
	stop, err := scheduleWarmup("@every 1h", w)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	<-w.started

	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatalf("stop returned while the start-up warm-up was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(w.release)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("stop did not return after the warm-up finished")
	}
}

func TestScheduledWarm_SkipsClosedMarket(t *testing.T) {
	old := tradingDay
	t.Cleanup(func() { tradingDay = old })

	w := &countingWarmer{}
	tradingDay = func() bool { return false }
	scheduledWarm(w)
	if atomic.LoadInt32(&w.calls) != 0 {
		t.Fatalf("warmer must not run while market is closed")
	}

	tradingDay = func() bool { return true }
	scheduledWarm(w)
	if atomic.LoadInt32(&w.calls) != 1 {
		t.Fatalf("warmer must run on a trading day, calls=%d", w.calls)
	}
}

// TestInitializeApp_WithoutCredential checks the gateway still serves
// conversions and reports itself degraded when brapi has no token.
func TestInitializeApp_WithoutCredential(t *testing.T) {
	frankfurter := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":1,"base":"USD","date":"2025-01-15","rates":{"BRL":5.5}}`))
	}))
	defer frankfurter.Close()

	withConfig(t, testConfig(frankfurter.URL, "http://127.0.0.1:1", ""))
	gotSpec := "unset"
	withScheduler(t, func(spec string, _ Warmer) (func(), error) {
		gotSpec = spec
		return func() {}, nil
	})

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	if gotSpec != "" {
		t.Fatalf("warm-up must be disabled without credential, got spec %q", gotSpec)
	}

	cases := []struct {
		path string
		want int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusServiceUnavailable},
		{"/v1/currencies", http.StatusOK},
		{"/v1/conversion/historical?to=BRL&date=2025-01-15", http.StatusOK},
		{"/v1/b3stocks/all", http.StatusServiceUnavailable},
		{"/metrics", http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s: status=%d want %d (%s)", tc.path, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestInitializeApp_WithCredential(t *testing.T) {
	withConfig(t, testConfig("http://127.0.0.1:1", "http://127.0.0.1:1", "token"))
	var gotSpec string
	withScheduler(t, func(spec string, _ Warmer) (func(), error) {
		gotSpec = spec
		return func() {}, nil
	})

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	if gotSpec != "@every 3h" {
		t.Fatalf("spec=%q", gotSpec)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w.Code)
	}
}

func TestInitializeApp_SchedulerFailure(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1", "http://127.0.0.1:1", "token")
	cfg.Tickers.WarmupSpec = "not a cron spec"
	withConfig(t, cfg)

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		t.Fatalf("expected error from InitializeApp with invalid warm-up spec")
	}
}
