package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"unitrade/auth"
	"unitrade/config"
	"unitrade/db"
	"unitrade/logger"
	"unitrade/models"
	"unitrade/routes"
	"unitrade/store"
	"unitrade/websocket"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	var users store.UserRepository
	var ledger store.TransactionRepository
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := db.Connect(ctx, cfg.MongoURI)
		if err != nil {
			zlog.Fatal("mongodb connect failed", zap.Error(err))
		}
		defer client.Disconnect(ctx)
		zlog.Info("connected to mongodb")

		mongoStore, err := store.NewMongoStore(ctx, client.Database(cfg.MongoDatabase))
		if err != nil {
			zlog.Fatal("store init failed", zap.Error(err))
		}
		users = mongoStore.Users()
		ledger = mongoStore.Transactions()
	default:
		memStore := store.NewMemoryStore()
		users = memStore.Users()
		ledger = memStore.Transactions()
		zlog.Info("using in-memory store")
	}

	if cfg.SeedDemoUsers {
		if err := seedDemoUsers(ctx, users, ledger); err != nil {
			zlog.Warn("demo seed failed", zap.Error(err))
		} else {
			zlog.Info("demo users seeded")
		}
	}

	hub := models.NewHub(zlog)
	go hub.Run()
	go websocket.Ticker(ctx, hub, cfg.TickInterval)

	signer := auth.NewSigner(cfg.JWTSecret, cfg.TokenTTL)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(hub, c.Writer, c.Request)
	})

	routes.AuthRoutes(r, users, signer, zlog)
	routes.MarketRoutes(r)
	routes.TransactionRoutes(r, ledger, signer, zlog)
	routes.WalletRoutes(r, ledger, signer, zlog)

	zlog.Info("server running", zap.String("port", cfg.Port), zap.Duration("tick", cfg.TickInterval))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
