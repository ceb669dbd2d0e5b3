package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}

func TestSignerRoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	token, err := signer.Sign("user-42")
	require.NoError(t, err)

	userID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestSignerRejectsBadTokens(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	token, err := signer.Sign("user-42")
	require.NoError(t, err)

	tests := []struct {
		name   string
		verify *Signer
		token  string
	}{
		{"garbage", signer, "not.a.token"},
		{"wrong secret", NewSigner("other-secret", time.Hour), token},
		{"empty", signer, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verify.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSignerRejectsExpiredToken(t *testing.T) {
	expired := NewSigner("test-secret", -time.Minute)
	token, err := expired.Sign("user-42")
	require.NoError(t, err)

	_, err = expired.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	signer := NewSigner("test-secret", time.Hour)

	r := gin.New()
	r.GET("/secure", RequireAuth(signer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})

	token, err := signer.Sign("user-42")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusForbidden},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
