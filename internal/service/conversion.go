package service

import (
	"context"

	"github.com/guttosm/finance-gateway/internal/domain/models"
	"github.com/guttosm/finance-gateway/internal/upstream"
)

// RatesProvider fetches currency conversions. *upstream.Frankfurter satisfies it.
type RatesProvider interface {
	Historical(ctx context.Context, date string, q upstream.RatesQuery) (map[string]any, error)
	Interval(ctx context.Context, start, end string, q upstream.RatesQuery) (map[string]any, error)
}

// ConversionService defines the currency conversion use cases.
type ConversionService interface {
	Historical(ctx context.Context, req models.HistoricalConversion) (map[string]any, error)
	Interval(ctx context.Context, req models.IntervalConversion) (map[string]any, error)
}

type conversionService struct {
	rates RatesProvider
}

func NewConversionService(rates RatesProvider) ConversionService {
	return &conversionService{rates: rates}
}

func (s *conversionService) Historical(ctx context.Context, req models.HistoricalConversion) (map[string]any, error) {
	out, err := s.rates.Historical(ctx, req.Date, upstream.RatesQuery{Base: req.From, Symbols: req.To, Amount: req.Amount})
	if err != nil {
		return nil, err
	}
	return normalizeConversion(out), nil
}

func (s *conversionService) Interval(ctx context.Context, req models.IntervalConversion) (map[string]any, error) {
	out, err := s.rates.Interval(ctx, req.StartDate, req.EndDate, upstream.RatesQuery{Base: req.From, Symbols: req.To, Amount: req.Amount})
	if err != nil {
		return nil, err
	}
	return normalizeConversion(out), nil
}

// normalizeConversion renames the provider keys "base" to "from" and
// "rates" to "to" in place. Every other key is left untouched.
func normalizeConversion(payload map[string]any) map[string]any {
	if payload == nil {
		return map[string]any{}
	}
	rename(payload, "base", "from")
	rename(payload, "rates", "to")
	return payload
}

func rename(m map[string]any, from, to string) {
	if v, ok := m[from]; ok {
		delete(m, from)
		m[to] = v
	}
}
