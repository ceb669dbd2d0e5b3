// Package market produces synthetic quotes for a fixed catalog of
// equities and cryptocurrencies. Every snapshot is an independent pure
// computation seeded by wall-clock time; there is no continuity between
// consecutive calls.
package market

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"unitrade/models"
)

type catalogEntry struct {
	Symbol string
	Name   string
}

// Catalog order matters: the price band of each asset is derived from
// its index.
var catalog = []catalogEntry{
	{"AAPL", "Apple Inc."},
	{"MSFT", "Microsoft"},
	{"GOOGL", "Alphabet"},
	{"AMZN", "Amazon"},
	{"TSLA", "Tesla"},
	{"BTC", "Bitcoin"},
	{"ETH", "Ethereum"},
	{"SOL", "Solana"},
	{"XRP", "Ripple"},
	{"ADA", "Cardano"},
}

// seededRand maps a seed to a value in [0, 1). The same seed always
// produces the same value, so two snapshots taken within the same
// millisecond are identical.
func seededRand(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// SnapshotAt generates a snapshot for the given instant. Exposed
// separately from Snapshot so callers can pin the clock.
func SnapshotAt(t time.Time) models.MarketSnapshot {
	ms := float64(t.UnixMilli())
	assets := make([]models.Asset, 0, len(catalog))
	for i, entry := range catalog {
		base := 50 + float64(i)*30
		price := base + seededRand(ms/1000+float64(i))*base
		change := -5 + seededRand(ms/500+float64(i))*10
		assets = append(assets, models.Asset{
			Symbol:    entry.Symbol,
			Name:      entry.Name,
			Price:     decimal.NewFromFloat(price).Round(2),
			Change24h: decimal.NewFromFloat(change).Round(2),
		})
	}
	return models.MarketSnapshot{Timestamp: t.UTC(), Assets: assets}
}

// Snapshot generates a snapshot for the current wall-clock time.
func Snapshot() models.MarketSnapshot {
	return SnapshotAt(time.Now())
}

// Rates returns the fixed fiat conversion table.
func Rates() models.ExchangeRates {
	return models.ExchangeRates{
		Base:      "USD",
		Timestamp: time.Now().UTC(),
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.NewFromFloat(0.92),
			"INR": decimal.NewFromFloat(83.1),
		},
	}
}
