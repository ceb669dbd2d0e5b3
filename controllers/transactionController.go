package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/models"
	"unitrade/store"
)

type executeTradeRequest struct {
	Type               string          `json:"type"`
	AssetSymbol        string          `json:"assetSymbol"`
	Quantity           decimal.Decimal `json:"quantity"`
	PriceAtTransaction decimal.Decimal `json:"priceAtTransaction"`
}

// ExecuteTradeHandler appends an immutable transaction to the ledger.
// Price and quantity are caller-supplied and are not checked against
// the market snapshot; a SELL may drive a position negative.
func ExecuteTradeHandler(ledger store.TransactionRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req executeTradeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		req.AssetSymbol = strings.ToUpper(strings.TrimSpace(req.AssetSymbol))
		if !models.ValidTradeType(req.Type) || req.AssetSymbol == "" ||
			!req.Quantity.IsPositive() || !req.PriceAtTransaction.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		tx := &models.Transaction{
			ID:                 uuid.NewString(),
			UserID:             auth.UserID(c),
			Type:               req.Type,
			AssetSymbol:        req.AssetSymbol,
			Quantity:           req.Quantity,
			PriceAtTransaction: req.PriceAtTransaction,
			FiatEquivalent:     req.Quantity.Mul(req.PriceAtTransaction),
			Date:               time.Now().UTC(),
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := ledger.Create(ctx, tx); err != nil {
			log.Error("transaction create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to execute transaction"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Transaction recorded", "transaction": tx})
	}
}

// HistoryHandler returns the user's full transaction list, most recent
// first. No pagination.
func HistoryHandler(ledger store.TransactionRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		txs, err := ledger.ListByUser(ctx, auth.UserID(c))
		if err != nil {
			log.Error("history fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch history"})
			return
		}

		c.JSON(http.StatusOK, txs)
	}
}
