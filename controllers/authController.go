package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/models"
	"unitrade/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates a new user and returns a signed token for it.
func RegisterHandler(users store.UserRepository, signer *auth.Signer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Username == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Error("password hash failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}

		user := &models.User{
			ID:           uuid.NewString(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
				return
			}
			log.Error("user create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}

		token, err := signer.Sign(user.ID)
		if err != nil {
			log.Error("token sign failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.Public()})
	}
}

// LoginHandler checks credentials and returns a signed token. Unknown
// emails and wrong passwords produce the same response.
func LoginHandler(users store.UserRepository, signer *auth.Signer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := requestContext(c)
		defer cancel()

		user, err := users.FindByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			log.Error("user lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := signer.Sign(user.ID)
		if err != nil {
			log.Error("token sign failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
	}
}
