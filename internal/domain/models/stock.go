package models

// StockQuote is a validated quote lookup for one B3 ticker.
//
// Fundamental and Dividends are tri-state: nil means the caller did not
// send the flag and it is omitted upstream.
type StockQuote struct {
	Ticker      string `json:"ticker" example:"PETR4"`
	Range       string `json:"range" example:"1d"`
	Interval    string `json:"interval" example:"1d"`
	Fundamental *bool  `json:"fundamental,omitempty"`
	Dividends   *bool  `json:"dividends,omitempty"`
}

// StockListing is a validated filter/sort/pagination request over the
// B3 stock list. Sector is empty when unfiltered; Page and Limit are zero
// when not supplied (valid values start at 1).
type StockListing struct {
	Sector   string `json:"sector,omitempty" example:"Finance"`
	SortedBy string `json:"sortedBy" example:"name"`
	Order    string `json:"order" example:"asc"`
	Page     int    `json:"page,omitempty" example:"1"`
	Limit    int    `json:"limit,omitempty" example:"10"`
}
