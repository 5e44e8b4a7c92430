package dateutil

import (
	"time"

	"github.com/guttosm/finance-gateway/internal/apperr"
)

const (
	// CanonicalLayout is YYYY-MM-DD, the only form used past validation.
	CanonicalLayout = "2006-01-02"
	// dayFirstLayout is DD-MM-YYYY.
	dayFirstLayout = "02-01-2006"
)

// accepted layouts, tried in order; the first successful parse wins.
var layouts = []string{CanonicalLayout, dayFirstLayout}

// Normalize parses text in one of the accepted layouts and returns it as
// YYYY-MM-DD. Dates are calendar-only: no time or zone component is
// accepted. Non-existent dates such as 2025-02-30 fail.
//
// Returns:
//   - string: canonical date.
//   - error: *apperr.Error of KindInvalidDate naming the input.
func Normalize(text string) (string, error) {
	for _, layout := range layouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d.Format(CanonicalLayout), nil
		}
	}
	return "", apperr.InvalidDate(text)
}

// Today returns now truncated to its calendar date in canonical form.
func Today(now time.Time) string {
	return now.Format(CanonicalLayout)
}
