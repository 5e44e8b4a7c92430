package validation

import (
	"context"
	"net/url"
	"strings"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/catalog"
	"github.com/guttosm/finance-gateway/internal/domain/models"
)

// HistoricalConversion validates /v1/conversion/historical parameters.
//
// Check order: from, each to entry left to right, amount, date.
func (v *Validator) HistoricalConversion(q url.Values) (models.HistoricalConversion, error) {
	from, to, err := currencies(q)
	if err != nil {
		return models.HistoricalConversion{}, err
	}
	amt, err := amount(q)
	if err != nil {
		return models.HistoricalConversion{}, err
	}
	date, err := v.date(q, "date")
	if err != nil {
		return models.HistoricalConversion{}, err
	}
	return models.HistoricalConversion{From: from, To: to, Amount: amt, Date: date}, nil
}

// IntervalConversion validates /v1/conversion/interval parameters.
//
// Check order: from, each to entry, amount, start_date, end_date. The dates
// are defaulted and normalized independently; their ordering is left to the
// provider.
func (v *Validator) IntervalConversion(q url.Values) (models.IntervalConversion, error) {
	from, to, err := currencies(q)
	if err != nil {
		return models.IntervalConversion{}, err
	}
	amt, err := amount(q)
	if err != nil {
		return models.IntervalConversion{}, err
	}
	start, err := v.date(q, "start_date")
	if err != nil {
		return models.IntervalConversion{}, err
	}
	end, err := v.date(q, "end_date")
	if err != nil {
		return models.IntervalConversion{}, err
	}
	return models.IntervalConversion{From: from, To: to, Amount: amt, StartDate: start, EndDate: end}, nil
}

// StockQuote validates /v1/b3stocks/quote parameters.
//
// Behavior:
//   - ticker is mandatory and upper-cased.
//   - the ticker directory check is skipped when its state is unknown.
//   - range and interval default to "1d".
//   - fundamental and dividends accept only "true"/"false" when present.
func (v *Validator) StockQuote(ctx context.Context, q url.Values) (models.StockQuote, error) {
	ticker := strings.ToUpper(param(q, "ticker"))
	if ticker == "" {
		return models.StockQuote{}, apperr.BadRequest("The 'ticker' parameter is required")
	}
	if v.tickers != nil {
		if found, known := v.tickers.Contains(ctx, ticker); known && !found {
			return models.StockQuote{}, apperr.BadRequest("The following ticker does not exist: %s", ticker)
		}
	}

	out := models.StockQuote{
		Ticker:   ticker,
		Range:    paramOr(q, "range", DefaultRange),
		Interval: paramOr(q, "interval", DefaultInterval),
	}

	var err error
	if out.Fundamental, err = triState(q, "fundamental"); err != nil {
		return models.StockQuote{}, err
	}
	if out.Dividends, err = triState(q, "dividends"); err != nil {
		return models.StockQuote{}, err
	}
	return out, nil
}

// StockListing validates /v1/b3stocks/stocksinfo parameters.
//
// Check order: sector, sortedBy, order, page, limit.
func (v *Validator) StockListing(q url.Values) (models.StockListing, error) {
	out := models.StockListing{
		Sector:   param(q, "sector"),
		SortedBy: paramOr(q, "sortedBy", DefaultSortedBy),
		Order:    paramOr(q, "order", DefaultOrder),
	}

	if out.Sector != "" && !catalog.SectorExists(out.Sector) {
		return models.StockListing{}, apperr.BadRequest("The following sector does not exist: %s", out.Sector)
	}
	if !catalog.SortFieldExists(out.SortedBy) {
		return models.StockListing{}, apperr.BadRequest("The 'sortedBy' parameter must be one of: %s",
			strings.Join(catalog.SortFields(), ", "))
	}
	if !catalog.SortOrderExists(out.Order) {
		return models.StockListing{}, apperr.BadRequest("The 'order' parameter must be either 'asc' or 'desc'")
	}

	var err error
	if out.Page, err = positiveInt(q, "page"); err != nil {
		return models.StockListing{}, err
	}
	if out.Limit, err = positiveInt(q, "limit"); err != nil {
		return models.StockListing{}, err
	}
	return out, nil
}
