package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TradeBuy     = "BUY"
	TradeSell    = "SELL"
	TradeConvert = "CONVERT"
)

// ValidTradeType reports whether t is one of BUY, SELL or CONVERT.
func ValidTradeType(t string) bool {
	return t == TradeBuy || t == TradeSell || t == TradeConvert
}

// Transaction is a single immutable ledger entry. It is created once at
// execution time and never updated or deleted afterwards.
type Transaction struct {
	ID                 string          `json:"id" bson:"id"`
	UserID             string          `json:"userId" bson:"userId"`
	Type               string          `json:"type" bson:"type"` // BUY, SELL or CONVERT
	AssetSymbol        string          `json:"assetSymbol" bson:"assetSymbol"`
	Quantity           decimal.Decimal `json:"quantity" bson:"quantity"`
	PriceAtTransaction decimal.Decimal `json:"priceAtTransaction" bson:"priceAtTransaction"`
	FiatEquivalent     decimal.Decimal `json:"fiatEquivalent" bson:"fiatEquivalent"`
	Date               time.Time       `json:"date" bson:"date"`
}
