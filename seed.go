package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"unitrade/auth"
	"unitrade/models"
	"unitrade/store"
)

// seedDemoUsers creates a demo account with a small starter ledger so a
// fresh deployment has something to show. Safe to run repeatedly: an
// already-registered demo email is left alone.
func seedDemoUsers(ctx context.Context, users store.UserRepository, ledger store.TransactionRepository) error {
	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		return err
	}

	demo := &models.User{
		ID:           uuid.NewString(),
		Username:     "demo_trader",
		Email:        "demo@unitrade.dev",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, demo); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil
		}
		return err
	}

	starter := []struct {
		tradeType string
		symbol    string
		quantity  float64
		price     float64
	}{
		{models.TradeBuy, "AAPL", 10, 150},
		{models.TradeBuy, "BTC", 0.5, 45000},
		{models.TradeSell, "AAPL", 2, 160},
	}
	for i, s := range starter {
		quantity := decimal.NewFromFloat(s.quantity)
		price := decimal.NewFromFloat(s.price)
		tx := &models.Transaction{
			ID:                 uuid.NewString(),
			UserID:             demo.ID,
			Type:               s.tradeType,
			AssetSymbol:        s.symbol,
			Quantity:           quantity,
			PriceAtTransaction: price,
			FiatEquivalent:     quantity.Mul(price),
			Date:               time.Now().UTC().Add(time.Duration(i-len(starter)) * time.Minute),
		}
		if err := ledger.Create(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}
