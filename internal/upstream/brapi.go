package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/metrics"
)

const (
	// DefaultBrapiURL is the public brapi API.
	DefaultBrapiURL = "https://brapi.dev/api"
	// BrapiKeyName is the configuration key holding the brapi token.
	BrapiKeyName = "BRAPI_API_KEY"
)

// QuoteQuery holds the /quote/{ticker} query parameters.
type QuoteQuery struct {
	Range       string
	Interval    string
	Fundamental *bool
	Dividends   *bool
}

func (q QuoteQuery) params() Params {
	return Params{
		"range":       q.Range,
		"interval":    q.Interval,
		"fundamental": optionalBool(q.Fundamental),
		"dividends":   optionalBool(q.Dividends),
	}
}

// ListQuery holds the /quote/list query parameters. Zero values are absent.
type ListQuery struct {
	Sector    string
	SortBy    string
	SortOrder string
	Limit     int
	Page      int
}

func (q ListQuery) params() Params {
	return Params{
		"sector":    q.Sector,
		"sortBy":    q.SortBy,
		"sortOrder": q.SortOrder,
		"limit":     optionalInt(q.Limit),
		"page":      optionalInt(q.Page),
		"type":      "stock",
	}
}

// Brapi is the B3 stock-data provider client. Every call needs a bearer token.
type Brapi struct {
	c jsonClient
}

// NewBrapi builds a client for baseURL authenticating with token. An empty
// token is accepted here; each call then fails with KindMissingCredential
// before touching the network.
func NewBrapi(baseURL, token string, timeout time.Duration, m *metrics.Metrics) *Brapi {
	c := newJSONClient("brapi", baseURL, timeout, m)
	c.bearer = token
	return &Brapi{c: c}
}

// HasCredential reports whether a token is configured.
func (b *Brapi) HasCredential() bool { return b.c.bearer != "" }

func (b *Brapi) get(ctx context.Context, endpoint string, params Params, out any) error {
	if b.c.bearer == "" {
		return apperr.MissingCredential(BrapiKeyName)
	}
	err := b.c.getJSON(ctx, endpoint, params, out)
	if ae := apperr.From(err); ae != nil && ae.Kind == apperr.KindUpstream && ae.Status == http.StatusUnauthorized {
		return apperr.InvalidCredential("brapi", err)
	}
	return err
}

// Available lists every ticker currently tradable on B3 (GET /available).
func (b *Brapi) Available(ctx context.Context) ([]string, error) {
	var out struct {
		Stocks []string `json:"stocks"`
	}
	if err := b.get(ctx, "/available", nil, &out); err != nil {
		return nil, err
	}
	return out.Stocks, nil
}

// Quote fetches quote results for one ticker (GET /quote/{ticker}).
//
// Returns:
//   - json.RawMessage: the provider's "results" array, untouched.
//   - error: credential or upstream failure.
func (b *Brapi) Quote(ctx context.Context, ticker string, q QuoteQuery) (json.RawMessage, error) {
	var out struct {
		Results json.RawMessage `json:"results"`
	}
	if err := b.get(ctx, "/quote/"+url.PathEscape(ticker), q.params(), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// List fetches the filtered, sorted stock list (GET /quote/list) and returns
// the whole payload.
func (b *Brapi) List(ctx context.Context, q ListQuery) (json.RawMessage, error) {
	var out json.RawMessage
	if err := b.get(ctx, "/quote/list", q.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func optionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func optionalInt(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
