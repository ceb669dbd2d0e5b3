package routes

import (
	"github.com/gin-gonic/gin"

	"unitrade/controllers"
)

func MarketRoutes(r *gin.Engine) {
	r.GET("/api/market/overview", controllers.MarketOverviewHandler)
	r.GET("/api/market/rates", controllers.MarketRatesHandler)
	r.GET("/api/health", controllers.HealthHandler)
}
