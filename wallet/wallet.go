// Package wallet derives a user's current positions and net worth by
// replaying the transaction ledger against a market snapshot.
package wallet

import (
	"sort"

	"github.com/shopspring/decimal"

	"unitrade/models"
)

// fallbackPrice values holdings whose symbol is missing from the
// snapshot. Inherited behavior; it can misstate net worth for delisted
// symbols.
var fallbackPrice = decimal.NewFromInt(1)

// Compute folds the transaction list into holdings and values them
// against the snapshot. The fold is a plain sum, so the result does not
// depend on transaction order. SELL subtracts quantity; BUY and CONVERT
// both add (CONVERT is recorded single-leg, identical to BUY).
func Compute(txs []models.Transaction, snap models.MarketSnapshot) models.Wallet {
	quantities := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		delta := tx.Quantity
		if tx.Type == models.TradeSell {
			delta = delta.Neg()
		}
		quantities[tx.AssetSymbol] = quantities[tx.AssetSymbol].Add(delta)
	}

	prices := make(map[string]decimal.Decimal, len(snap.Assets))
	for _, a := range snap.Assets {
		prices[a.Symbol] = a.Price
	}

	// Positions that net to zero or below are dropped, not reported as
	// shorts.
	holdings := make([]models.Holding, 0, len(quantities))
	total := decimal.Zero
	for symbol, qty := range quantities {
		if !qty.IsPositive() {
			continue
		}
		price, ok := prices[symbol]
		if !ok {
			price = fallbackPrice
		}
		holdings = append(holdings, models.Holding{Symbol: symbol, Quantity: qty})
		total = total.Add(price.Mul(qty))
	}

	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Symbol < holdings[j].Symbol })

	return models.Wallet{
		Holdings:      holdings,
		TotalNetWorth: total,
		Timestamp:     snap.Timestamp,
	}
}
