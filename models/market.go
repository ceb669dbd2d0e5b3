package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is one quoted instrument in a market snapshot. Assets are
// ephemeral: they are recomputed on every request and never persisted.
type Asset struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change24h"`
}

// MarketSnapshot is the full set of quotes produced by one generator call.
// There is no continuity guarantee between consecutive snapshots.
type MarketSnapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Assets    []Asset   `json:"assets"`
}

// ExchangeRates is a fixed fiat conversion table relative to a base currency.
type ExchangeRates struct {
	Base      string                     `json:"base"`
	Timestamp time.Time                  `json:"timestamp"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}
