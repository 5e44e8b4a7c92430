package validation

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/catalog"
	"github.com/guttosm/finance-gateway/internal/dateutil"
)

// Defaults applied to absent query parameters.
const (
	DefaultFromCurrency = "USD"
	DefaultAmount       = "1"
	DefaultRange        = "1d"
	DefaultInterval     = "1d"
	DefaultSortedBy     = "name"
	DefaultOrder        = catalog.SortAsc
)

// TickerChecker answers ticker membership. known=false means the answer is
// unavailable and the check must be skipped. *tickers.Directory satisfies it.
type TickerChecker interface {
	Contains(ctx context.Context, ticker string) (found, known bool)
}

// Validator turns raw query parameters into typed, fully defaulted request
// records. It fails fast on the first invalid field with an
// *apperr.Error of KindBadRequest.
type Validator struct {
	tickers TickerChecker
	now     func() time.Time
}

// New builds a Validator. A nil now uses time.Now; a nil tickers skips the
// ticker membership check.
func New(tickers TickerChecker, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{tickers: tickers, now: now}
}

// param returns the trimmed value of key; empty means absent.
func param(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

func paramOr(q url.Values, key, def string) string {
	if v := param(q, key); v != "" {
		return v
	}
	return def
}

// currencies validates from and the optional comma-separated to list.
func currencies(q url.Values) (string, []string, error) {
	from := paramOr(q, "from", DefaultFromCurrency)
	if !catalog.CurrencyExists(from) {
		return "", nil, apperr.BadRequest("The following currency does not exist: %s", from)
	}

	raw := param(q, "to")
	if raw == "" {
		return from, nil, nil
	}
	// Entries are matched verbatim: "USD, BRL" names " BRL", which is not a code.
	to := strings.Split(raw, ",")
	for _, code := range to {
		if !catalog.CurrencyExists(code) {
			return "", nil, apperr.BadRequest("The following currency does not exist: %s", code)
		}
	}
	return from, to, nil
}

func amount(q url.Values) (string, error) {
	a := paramOr(q, "amount", DefaultAmount)
	if _, err := strconv.Atoi(a); err != nil {
		return "", apperr.BadRequest("The 'amount' parameter must be a number")
	}
	return a, nil
}

// date normalizes key or defaults it to today. InvalidDate is converted to
// BadRequest here so it never reaches the HTTP boundary.
func (v *Validator) date(q url.Values, key string) (string, error) {
	raw := param(q, key)
	if raw == "" {
		return dateutil.Today(v.now()), nil
	}
	d, err := dateutil.Normalize(raw)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return "", apperr.BadRequest("%s", ae.Message)
		}
		return "", apperr.BadRequest("The following date does not exist: %s", raw)
	}
	return d, nil
}

// triState accepts only the literals "true" and "false"; absent is nil.
func triState(q url.Values, key string) (*bool, error) {
	switch param(q, key) {
	case "":
		return nil, nil
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, apperr.BadRequest("The '%s' parameter must be either 'true' or 'false'", key)
	}
}

// positiveInt parses an optional integer >= 1; absent is 0.
func positiveInt(q url.Values, key string) (int, error) {
	raw := param(q, key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.BadRequest("The '%s' parameter must be an integer greater than or equal to 1", key)
	}
	return n, nil
}
