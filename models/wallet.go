package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a derived position: the signed sum of all transaction
// quantities for one symbol. Holdings are never stored.
type Holding struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Wallet is the derived view of a user's positions valued against one
// market snapshot. It lives only for the duration of a single request.
type Wallet struct {
	Holdings      []Holding       `json:"holdings"`
	TotalNetWorth decimal.Decimal `json:"totalNetWorth"`
	Timestamp     time.Time       `json:"timestamp"`
}
