package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/controllers"
	"unitrade/store"
)

func TransactionRoutes(r *gin.Engine, ledger store.TransactionRepository, signer *auth.Signer, log *zap.Logger) {
	group := r.Group("/api/transactions", auth.RequireAuth(signer))
	group.POST("/execute", controllers.ExecuteTradeHandler(ledger, log))
	group.GET("/history", controllers.HistoryHandler(ledger, log))
}
