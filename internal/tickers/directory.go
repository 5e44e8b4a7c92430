package tickers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/finance-gateway/internal/logger"
	"github.com/guttosm/finance-gateway/internal/metrics"
)

// DefaultTTL is how long a successful refresh stays fresh.
const DefaultTTL = 3 * time.Hour

// DefaultRefreshTimeout bounds one shared refresh.
const DefaultRefreshTimeout = 10 * time.Second

// ErrNotLoaded is returned by List when no ticker set was ever loaded.
var ErrNotLoaded = errors.New("ticker directory not loaded")

// Source returns the tickers currently tradable on the exchange.
// *upstream.Brapi satisfies it.
type Source interface {
	Available(ctx context.Context) ([]string, error)
}

// Directory is a process-wide cache of valid B3 tickers.
//
// Behavior:
//   - The set is refreshed from Source when empty or older than ttl, measured
//     from the last successful refresh.
//   - A failed refresh keeps the previous set (stale but usable).
//   - Concurrent refreshes are collapsed into one upstream call; if two still
//     race, the last successful write wins.
//   - The shared call is detached from any single caller's cancellation and
//     bounded by refreshTimeout instead.
//
// Safe for concurrent use.
type Directory struct {
	source         Source
	ttl            time.Duration
	refreshTimeout time.Duration
	now            func() time.Time
	metrics        *metrics.Metrics

	group singleflight.Group

	mu          sync.RWMutex
	set         map[string]struct{}
	list        []string
	refreshedAt time.Time
}

// Option customizes a Directory.
type Option func(*Directory)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithRefreshTimeout bounds each upstream refresh. Non-positive values are ignored.
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(d *Directory) {
		if timeout > 0 {
			d.refreshTimeout = timeout
		}
	}
}

// WithMetrics records refresh outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Directory) { d.metrics = m }
}

// NewDirectory builds an empty directory backed by source. A non-positive
// ttl falls back to DefaultTTL.
func NewDirectory(source Source, ttl time.Duration, opts ...Option) *Directory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	d := &Directory{source: source, ttl: ttl, refreshTimeout: DefaultRefreshTimeout, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Refresh fetches the ticker set and replaces the cached one on success.
//
// Callers joining an in-flight refresh share its result. A caller whose ctx
// ends first returns ctx.Err() without cancelling the refresh for the others.
func (d *Directory) Refresh(ctx context.Context) error {
	ch := d.group.DoChan("refresh", func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.refreshTimeout)
		defer cancel()

		stocks, err := d.source.Available(fctx)
		d.metrics.ObserveTickerRefresh(err)
		if err != nil {
			return nil, err
		}

		set := make(map[string]struct{}, len(stocks))
		for _, s := range stocks {
			set[strings.ToUpper(s)] = struct{}{}
		}

		d.mu.Lock()
		d.set = set
		d.list = append([]string(nil), stocks...)
		d.refreshedAt = d.now()
		d.mu.Unlock()

		logger.L().Info().Int("tickers", len(stocks)).Msg("ticker directory refreshed")
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stale reports whether the set is missing or past its ttl.
func (d *Directory) stale() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.set == nil || d.now().Sub(d.refreshedAt) >= d.ttl
}

// ensureFresh refreshes when stale. Failures are logged, never returned.
func (d *Directory) ensureFresh(ctx context.Context) {
	if !d.stale() {
		return
	}
	if err := d.Refresh(ctx); err != nil {
		logger.L().Warn().Err(err).Msg("ticker directory refresh failed, using cached state")
	}
}

// Contains reports whether ticker is listed.
//
// Returns:
//   - found: ticker is in the set (case-insensitive).
//   - known: a set is available; when false the answer is unknown and the
//     caller should defer the check to the provider.
func (d *Directory) Contains(ctx context.Context, ticker string) (found, known bool) {
	d.ensureFresh(ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.set == nil {
		return false, false
	}
	_, found = d.set[strings.ToUpper(ticker)]
	return found, true
}

// List returns the cached tickers in provider order, refreshing when stale.
// It fails only when nothing was ever loaded; the returned error is the
// refresh failure.
func (d *Directory) List(ctx context.Context) ([]string, error) {
	var refreshErr error
	if d.stale() {
		refreshErr = d.Refresh(ctx)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.set == nil {
		if refreshErr == nil {
			refreshErr = ErrNotLoaded
		}
		return nil, refreshErr
	}
	if refreshErr != nil {
		logger.L().Warn().Err(refreshErr).Msg("ticker directory refresh failed, serving stale list")
	}
	return append([]string(nil), d.list...), nil
}

// Warm refreshes only when the set is stale. Intended for scheduled jobs.
func (d *Directory) Warm(ctx context.Context) error {
	if !d.stale() {
		return nil
	}
	return d.Refresh(ctx)
}

// RefreshedAt is the time of the last successful refresh (zero if none).
func (d *Directory) RefreshedAt() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.refreshedAt
}
