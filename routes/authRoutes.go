package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/controllers"
	"unitrade/store"
)

func AuthRoutes(r *gin.Engine, users store.UserRepository, signer *auth.Signer, log *zap.Logger) {
	r.POST("/api/auth/register", controllers.RegisterHandler(users, signer, log))
	r.POST("/api/auth/login", controllers.LoginHandler(users, signer, log))
}
