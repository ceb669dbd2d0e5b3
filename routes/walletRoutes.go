package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/controllers"
	"unitrade/store"
)

func WalletRoutes(r *gin.Engine, ledger store.TransactionRepository, signer *auth.Signer, log *zap.Logger) {
	group := r.Group("/api/user", auth.RequireAuth(signer))
	group.GET("/wallet", controllers.WalletHandler(ledger, log))
}
