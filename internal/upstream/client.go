package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/logger"
	"github.com/guttosm/finance-gateway/internal/metrics"
)

// DefaultTimeout bounds every upstream call.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response body is read for messages.
const maxErrorBody = 4 << 10

// Params is an upstream query. Entries with an empty value are absent and
// never sent.
type Params map[string]string

// encode drops absent entries and encodes the rest.
func (p Params) encode() string {
	v := url.Values{}
	for key, value := range p {
		if value == "" {
			continue
		}
		v.Set(key, value)
	}
	return v.Encode()
}

// jsonClient is the GET+JSON core shared by both providers.
type jsonClient struct {
	provider   string
	baseURL    string
	bearer     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func newJSONClient(provider, baseURL string, timeout time.Duration, m *metrics.Metrics) jsonClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return jsonClient{
		provider:   provider,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// buildURL joins base and endpoint (adding the leading slash when missing)
// and appends the non-absent query parameters.
func (c jsonClient) buildURL(endpoint string, params Params) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	u := c.baseURL + endpoint
	if q := params.encode(); q != "" {
		u += "?" + q
	}
	return u
}

// getJSON performs GET base+endpoint and decodes a 2xx body into out.
//
// Behavior:
//   - Transport failures and timeouts become apperr.Upstream(503).
//   - Any non-2xx status becomes apperr.Upstream carrying that status.
//   - Numbers are decoded as json.Number when out is a map/any so values are
//     re-encoded exactly as the provider sent them.
func (c jsonClient) getJSON(ctx context.Context, endpoint string, params Params, out any) error {
	target := c.buildURL(endpoint, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return apperr.Internal("failed to build upstream request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(c.provider, "transport_error", time.Since(start))
		logger.L().Error().Str("provider", c.provider).Str("endpoint", endpoint).Bool("timeout", isTimeout(err)).Err(err).Msg("upstream request failed")
		return apperr.Upstream(http.StatusServiceUnavailable,
			fmt.Sprintf("%s is unreachable at the moment", c.provider), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.ObserveUpstream(c.provider, "status_"+statusClass(resp.StatusCode), time.Since(start))
		msg := c.statusMessage(resp, endpoint)
		logger.L().Warn().Str("provider", c.provider).Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg(msg)
		return apperr.Upstream(resp.StatusCode, msg, nil)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		c.metrics.ObserveUpstream(c.provider, "decode_error", time.Since(start))
		return apperr.Upstream(http.StatusBadGateway,
			fmt.Sprintf("%s returned an unreadable response", c.provider), err)
	}

	c.metrics.ObserveUpstream(c.provider, "success", time.Since(start))
	return nil
}

// statusMessage describes a failed response, preferring the provider's own
// "message" field when the body is JSON.
func (c jsonClient) statusMessage(resp *http.Response, endpoint string) string {
	base := fmt.Sprintf("%d %s for %s endpoint %s",
		resp.StatusCode, http.StatusText(resp.StatusCode), c.provider, endpoint)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return base
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return base + ": " + payload.Message
	}
	return base
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

// isTimeout reports whether err was caused by the client timeout or an
// expired context.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
