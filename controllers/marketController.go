package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unitrade/market"
)

// MarketOverviewHandler returns a fresh market snapshot. No auth; every
// call is an independent computation.
func MarketOverviewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, market.Snapshot())
}

// MarketRatesHandler returns the fixed fiat exchange-rate table.
func MarketRatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, market.Rates())
}

// HealthHandler is the liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
