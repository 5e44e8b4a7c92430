package models

// HistoricalConversion is a validated request to convert an amount on a
// single date.
//
// Fields:
//   - From: source currency code (default "USD").
//   - To: target currency codes; nil means the caller did not restrict them
//     and the symbols parameter is omitted upstream.
//   - Amount: integer amount kept as the caller's text (default "1").
//   - Date: canonical YYYY-MM-DD date (default today).
//
// swagger:model HistoricalConversion
type HistoricalConversion struct {
	From   string   `json:"from" example:"USD"`
	To     []string `json:"to,omitempty" example:"BRL,EUR"`
	Amount string   `json:"amount" example:"10"`
	Date   string   `json:"date" example:"2025-01-15"`
}

// IntervalConversion is a validated request to convert an amount over a
// date range. Both dates are canonical.
//
// swagger:model IntervalConversion
type IntervalConversion struct {
	From      string   `json:"from" example:"USD"`
	To        []string `json:"to,omitempty" example:"BRL"`
	Amount    string   `json:"amount" example:"1"`
	StartDate string   `json:"start_date" example:"2025-01-01"`
	EndDate   string   `json:"end_date" example:"2025-01-31"`
}
