package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// requestContext bounds a handler's store calls to a per-request timeout.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}
