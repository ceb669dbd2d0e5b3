// Package websocket exposes the live market feed: connected clients
// receive a snapshot on connect and a market_tick broadcast on every
// ticker interval.
package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"unitrade/market"
	"unitrade/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for simplicity; adjust in production
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs handles WebSocket requests from clients
func ServeWs(h *models.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &models.Client{Conn: conn, Send: make(chan models.WSMessage, 256)}
	h.Register <- client

	go client.WritePump()
	go client.ReadPump(h)

	// greet the new client and hand it a first snapshot immediately so
	// it does not wait a full tick for prices
	client.Send <- models.WSMessage{Event: "welcome", Data: "connected to server"}
	client.Send <- models.WSMessage{Event: "market_tick", Data: market.Snapshot()}
}

// Ticker broadcasts a fresh market snapshot to all clients on every
// interval until the context is cancelled.
func Ticker(ctx context.Context, h *models.Hub, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Broadcast <- models.WSMessage{Event: "market_tick", Data: market.Snapshot()}
		}
	}
}
