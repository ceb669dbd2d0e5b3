package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/models"
	"unitrade/routes"
	"unitrade/store"
)

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

type tradeResponse struct {
	Message     string             `json:"message"`
	Transaction models.Transaction `json:"transaction"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	memStore := store.NewMemoryStore()
	signer := auth.NewSigner("test-secret", time.Hour)

	r := gin.New()
	routes.AuthRoutes(r, memStore.Users(), signer, log)
	routes.MarketRoutes(r)
	routes.TransactionRoutes(r, memStore.Transactions(), signer, log)
	routes.WalletRoutes(r, memStore.Transactions(), signer, log)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, username, email string) authResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func executeTrade(t *testing.T, r *gin.Engine, token, tradeType, symbol string, quantity, price float64) tradeResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/transactions/execute", token, gin.H{
		"type":               tradeType,
		"assetSymbol":        symbol,
		"quantity":           quantity,
		"priceAtTransaction": price,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp tradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMarketOverviewNeedsNoAuth(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/market/overview", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap models.MarketSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.Assets)
	for _, a := range snap.Assets {
		assert.True(t, a.Price.IsPositive(), "%s price must be positive", a.Symbol)
	}
	assert.False(t, snap.Timestamp.IsZero())
}

func TestMarketRates(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/market/rates", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rates models.ExchangeRates
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rates))
	assert.Equal(t, "USD", rates.Base)
	assert.Contains(t, rates.Rates, "EUR")
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty body", gin.H{}},
		{"missing password", gin.H{"username": "a", "email": "a@b.c"}},
		{"missing email", gin.H{"username": "a", "password": "pw"}},
		{"blank username", gin.H{"username": "  ", "email": "a@b.c", "password": "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter()
	register(t, r, "alice", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice2",
		"email":    "Alice@Example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter()
	register(t, r, "alice", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ghost@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/api/transactions/history", "/api/user/wallet"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = doJSON(t, r, http.MethodGet, path, "bogus", nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestExecuteTradeValidation(t *testing.T) {
	r := newTestRouter()
	account := register(t, r, "alice", "alice@example.com")

	tests := []struct {
		name string
		body gin.H
	}{
		{"bad type", gin.H{"type": "SHORT", "assetSymbol": "BTC", "quantity": 1, "priceAtTransaction": 100}},
		{"missing symbol", gin.H{"type": "BUY", "quantity": 1, "priceAtTransaction": 100}},
		{"zero quantity", gin.H{"type": "BUY", "assetSymbol": "BTC", "quantity": 0, "priceAtTransaction": 100}},
		{"negative price", gin.H{"type": "BUY", "assetSymbol": "BTC", "quantity": 1, "priceAtTransaction": -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/transactions/execute", account.Token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterLoginTradeHistory(t *testing.T) {
	r := newTestRouter()
	register(t, r, "alice", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	trade := executeTrade(t, r, login.Token, "BUY", "AAPL", 1, 150)
	assert.Equal(t, "Transaction recorded", trade.Message)
	assert.NotEmpty(t, trade.Transaction.ID)
	assert.True(t, trade.Transaction.FiatEquivalent.Equal(decimal.NewFromInt(150)))

	w = doJSON(t, r, http.MethodGet, "/api/transactions/history", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "AAPL", history[0].AssetSymbol)
	assert.True(t, history[0].FiatEquivalent.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, login.User.ID, history[0].UserID)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	r := newTestRouter()
	account := register(t, r, "alice", "alice@example.com")

	for i := 1; i <= 3; i++ {
		executeTrade(t, r, account.Token, "BUY", fmt.Sprintf("SYM%d", i), 1, 100)
	}

	w := doJSON(t, r, http.MethodGet, "/api/transactions/history", account.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Date.After(history[i-1].Date), "history not sorted most recent first")
	}
}

func TestWalletForEmptyLedger(t *testing.T) {
	r := newTestRouter()
	account := register(t, r, "alice", "alice@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/user/wallet", account.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var wallet models.Wallet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wallet))
	assert.Empty(t, wallet.Holdings)
	assert.True(t, wallet.TotalNetWorth.IsZero())
}

func TestWalletDerivation(t *testing.T) {
	r := newTestRouter()
	account := register(t, r, "alice", "alice@example.com")

	executeTrade(t, r, account.Token, "BUY", "BTC", 2, 100)
	executeTrade(t, r, account.Token, "SELL", "BTC", 1, 120)

	w := doJSON(t, r, http.MethodGet, "/api/user/wallet", account.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var wallet models.Wallet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wallet))
	require.Len(t, wallet.Holdings, 1)
	assert.Equal(t, "BTC", wallet.Holdings[0].Symbol)
	assert.True(t, wallet.Holdings[0].Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, wallet.TotalNetWorth.IsPositive())
	assert.False(t, wallet.Timestamp.IsZero())
}

func TestWalletIgnoresOtherUsers(t *testing.T) {
	r := newTestRouter()
	alice := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")

	executeTrade(t, r, alice.Token, "BUY", "BTC", 1, 100)

	w := doJSON(t, r, http.MethodGet, "/api/user/wallet", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var wallet models.Wallet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wallet))
	assert.Empty(t, wallet.Holdings)
}
