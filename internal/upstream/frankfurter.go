package upstream

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/finance-gateway/internal/metrics"
)

// DefaultFrankfurterURL is the public Frankfurter API.
const DefaultFrankfurterURL = "https://api.frankfurter.dev"

// RatesQuery holds the Frankfurter query parameters. Empty fields are
// omitted from the request.
type RatesQuery struct {
	Base    string   // source currency ("base")
	Symbols []string // target currencies ("symbols"), nil for all
	Amount  string   // amount to convert ("amount")
}

func (q RatesQuery) params() Params {
	return Params{
		"base":    q.Base,
		"symbols": strings.Join(q.Symbols, ","),
		"amount":  q.Amount,
	}
}

// Frankfurter is the currency-rate provider client.
type Frankfurter struct {
	c jsonClient
}

// NewFrankfurter builds a client for baseURL. No credential is needed.
func NewFrankfurter(baseURL string, timeout time.Duration, m *metrics.Metrics) *Frankfurter {
	return &Frankfurter{c: newJSONClient("frankfurter", baseURL, timeout, m)}
}

// Historical fetches the conversion for one canonical date (GET /v1/{date}).
//
// Returns:
//   - map[string]any: the provider payload (amount, base, date, rates).
//   - error: *apperr.Error of KindUpstream on any failure.
func (f *Frankfurter) Historical(ctx context.Context, date string, q RatesQuery) (map[string]any, error) {
	var out map[string]any
	if err := f.c.getJSON(ctx, "/v1/"+date, q.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Interval fetches the time series between two canonical dates
// (GET /v1/{start}..{end}).
func (f *Frankfurter) Interval(ctx context.Context, start, end string, q RatesQuery) (map[string]any, error) {
	var out map[string]any
	if err := f.c.getJSON(ctx, "/v1/"+start+".."+end, q.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
