package validation

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/domain/models"
)

var fixedNow = func() time.Time { return time.Date(2025, 1, 20, 15, 4, 5, 0, time.UTC) }

type stubTickers struct {
	found, known bool
	asked        string
}

func (s *stubTickers) Contains(_ context.Context, ticker string) (bool, bool) {
	s.asked = ticker
	return s.found, s.known
}

func query(raw string) url.Values {
	q, err := url.ParseQuery(raw)
	if err != nil {
		panic(err)
	}
	return q
}

// assertBadRequest checks the failure kind and that message mentions want.
func assertBadRequest(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest), "want bad request, got %v", err)
	assert.Contains(t, err.Error(), want)
}

func TestHistoricalConversion(t *testing.T) {
	v := New(nil, fixedNow)

	cases := []struct {
		name    string
		query   string
		want    models.HistoricalConversion
		wantErr string
	}{
		{
			name:  "all defaults",
			query: "",
			want:  models.HistoricalConversion{From: "USD", Amount: "1", Date: "2025-01-20"},
		},
		{
			name:  "explicit values",
			query: "from=EUR&to=BRL,USD&amount=10&date=15-01-2025",
			want:  models.HistoricalConversion{From: "EUR", To: []string{"BRL", "USD"}, Amount: "10", Date: "2025-01-15"},
		},
		{name: "unknown from", query: "from=XXX&to=BRL&amount=10", wantErr: "XXX"},
		{name: "unknown from wins over bad amount", query: "from=XXX&amount=abc&date=nope", wantErr: "XXX"},
		{name: "first unknown to entry", query: "to=USD,ZZZ,YYY", wantErr: "ZZZ"},
		{name: "trailing comma", query: "to=USD,", wantErr: "currency does not exist"},
		{name: "space after comma", query: "to=USD,%20BRL", wantErr: "does not exist:  BRL"},
		{name: "amount not integer", query: "amount=abc", wantErr: "'amount'"},
		{name: "amount decimal", query: "amount=1.5", wantErr: "'amount'"},
		{name: "amount before date", query: "amount=abc&date=2025-02-30", wantErr: "'amount'"},
		{name: "non-existent date", query: "date=2025-02-30", wantErr: "2025-02-30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.HistoricalConversion(query(tc.query))
			if tc.wantErr != "" {
				assertBadRequest(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHistoricalConversion_DateErrorIsBadRequest(t *testing.T) {
	_, err := New(nil, fixedNow).HistoricalConversion(query("date=garbage"))
	assert.False(t, apperr.IsKind(err, apperr.KindInvalidDate))
	assert.Equal(t, 400, apperr.From(err).HTTPStatus())
}

func TestIntervalConversion(t *testing.T) {
	v := New(nil, fixedNow)

	got, err := v.IntervalConversion(query(""))
	require.NoError(t, err)
	assert.Equal(t, models.IntervalConversion{From: "USD", Amount: "1", StartDate: "2025-01-20", EndDate: "2025-01-20"}, got)

	got, err = v.IntervalConversion(query("from=BRL&to=EUR&amount=3&start_date=01-01-2025&end_date=2025-01-31"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got.StartDate)
	assert.Equal(t, "2025-01-31", got.EndDate)
	assert.Equal(t, []string{"EUR"}, got.To)

	_, err = v.IntervalConversion(query("start_date=2025-02-30&end_date=bogus"))
	assertBadRequest(t, err, "2025-02-30")

	_, err = v.IntervalConversion(query("start_date=2025-01-01&end_date=bogus"))
	assertBadRequest(t, err, "bogus")

	_, err = v.IntervalConversion(query("to=GBP,QQQ&start_date=bogus"))
	assertBadRequest(t, err, "QQQ")
}

func TestStockQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("missing ticker", func(t *testing.T) {
		_, err := New(&stubTickers{found: true, known: true}, nil).StockQuote(ctx, query("ticker="))
		assertBadRequest(t, err, "'ticker'")
	})

	t.Run("defaults and upper-casing", func(t *testing.T) {
		st := &stubTickers{found: true, known: true}
		got, err := New(st, nil).StockQuote(ctx, query("ticker=petr4"))
		require.NoError(t, err)
		assert.Equal(t, "PETR4", st.asked)
		assert.Equal(t, models.StockQuote{Ticker: "PETR4", Range: "1d", Interval: "1d"}, got)
	})

	t.Run("unlisted ticker", func(t *testing.T) {
		_, err := New(&stubTickers{found: false, known: true}, nil).StockQuote(ctx, query("ticker=XXXX3"))
		assertBadRequest(t, err, "XXXX3")
	})

	t.Run("unknown directory allows through", func(t *testing.T) {
		got, err := New(&stubTickers{known: false}, nil).StockQuote(ctx, query("ticker=XXXX3"))
		require.NoError(t, err)
		assert.Equal(t, "XXXX3", got.Ticker)
	})

	t.Run("flags", func(t *testing.T) {
		v := New(&stubTickers{found: true, known: true}, nil)

		got, err := v.StockQuote(ctx, query("ticker=VALE3&range=5d&interval=1wk&fundamental=true&dividends=false"))
		require.NoError(t, err)
		require.NotNil(t, got.Fundamental)
		require.NotNil(t, got.Dividends)
		assert.True(t, *got.Fundamental)
		assert.False(t, *got.Dividends)
		assert.Equal(t, "5d", got.Range)
		assert.Equal(t, "1wk", got.Interval)

		got, err = v.StockQuote(ctx, query("ticker=VALE3"))
		require.NoError(t, err)
		assert.Nil(t, got.Fundamental)
		assert.Nil(t, got.Dividends)

		_, err = v.StockQuote(ctx, query("ticker=VALE3&fundamental=maybe"))
		assertBadRequest(t, err, "'fundamental'")

		_, err = v.StockQuote(ctx, query("ticker=VALE3&dividends=TRUE"))
		assertBadRequest(t, err, "'dividends'")
	})
}

func TestStockListing(t *testing.T) {
	v := New(nil, nil)

	cases := []struct {
		name    string
		query   string
		want    models.StockListing
		wantErr string
	}{
		{name: "defaults", query: "", want: models.StockListing{SortedBy: "name", Order: "asc"}},
		{
			name:  "all set",
			query: "sector=Finance&sortedBy=volume&order=desc&page=3&limit=25",
			want:  models.StockListing{Sector: "Finance", SortedBy: "volume", Order: "desc", Page: 3, Limit: 25},
		},
		{name: "unknown sector", query: "sector=Crypto", wantErr: "Crypto"},
		{name: "unknown sort field", query: "sortedBy=price", wantErr: "'sortedBy'"},
		{name: "bad order", query: "order=up", wantErr: "'order'"},
		{name: "page zero", query: "page=0", wantErr: "'page'"},
		{name: "page negative", query: "page=-1", wantErr: "'page'"},
		{name: "page text", query: "page=two", wantErr: "'page'"},
		{name: "limit zero", query: "limit=0", wantErr: "'limit'"},
		{name: "sector checked first", query: "sector=Crypto&order=up&page=0", wantErr: "Crypto"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.StockListing(query(tc.query))
			if tc.wantErr != "" {
				assertBadRequest(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
