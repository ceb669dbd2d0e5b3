package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/market"
	"unitrade/store"
	"unitrade/wallet"
)

// WalletHandler derives the user's holdings and net worth from the full
// transaction list and a fresh market snapshot. Nothing is cached, so
// two calls moments apart may value identical holdings differently.
func WalletHandler(ledger store.TransactionRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		txs, err := ledger.ListByUser(ctx, auth.UserID(c))
		if err != nil {
			log.Error("wallet fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute wallet"})
			return
		}

		c.JSON(http.StatusOK, wallet.Compute(txs, market.Snapshot()))
	}
}
