package service

import (
	"context"
	"encoding/json"

	"github.com/guttosm/finance-gateway/internal/domain/models"
	"github.com/guttosm/finance-gateway/internal/upstream"
)

// StockProvider fetches B3 market data. *upstream.Brapi satisfies it.
type StockProvider interface {
	Quote(ctx context.Context, ticker string, q upstream.QuoteQuery) (json.RawMessage, error)
	List(ctx context.Context, q upstream.ListQuery) (json.RawMessage, error)
}

// TickerLister returns the known tickers. *tickers.Directory satisfies it.
type TickerLister interface {
	List(ctx context.Context) ([]string, error)
}

// StockService defines the B3 stock use cases.
type StockService interface {
	All(ctx context.Context) ([]string, error)
	Quote(ctx context.Context, req models.StockQuote) (json.RawMessage, error)
	Listing(ctx context.Context, req models.StockListing) (json.RawMessage, error)
}

type stockService struct {
	stocks  StockProvider
	tickers TickerLister
}

func NewStockService(stocks StockProvider, tickers TickerLister) StockService {
	return &stockService{stocks: stocks, tickers: tickers}
}

// All serves the ticker directory so repeated calls share one upstream fetch.
func (s *stockService) All(ctx context.Context) ([]string, error) {
	return s.tickers.List(ctx)
}

func (s *stockService) Quote(ctx context.Context, req models.StockQuote) (json.RawMessage, error) {
	return s.stocks.Quote(ctx, req.Ticker, upstream.QuoteQuery{
		Range:       req.Range,
		Interval:    req.Interval,
		Fundamental: req.Fundamental,
		Dividends:   req.Dividends,
	})
}

func (s *stockService) Listing(ctx context.Context, req models.StockListing) (json.RawMessage, error) {
	return s.stocks.List(ctx, upstream.ListQuery{
		Sector:    req.Sector,
		SortBy:    req.SortedBy,
		SortOrder: req.Order,
		Limit:     req.Limit,
		Page:      req.Page,
	})
}
