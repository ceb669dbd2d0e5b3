package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

type Config struct {
	Port          string
	StoreBackend  string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTL      time.Duration
	TickInterval  time.Duration
	SeedDemoUsers bool
}

// Load reads configuration from the process environment, falling back
// to development defaults for anything unset.
func Load() (*Config, error) {
	tokenTTL, err := getEnvDuration("TOKEN_TTL", 168*time.Hour)
	if err != nil {
		return nil, err
	}

	tickInterval, err := getEnvDuration("MARKET_TICK_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnvString("PORT", "5000"),
		StoreBackend:  getEnvString("STORE_BACKEND", BackendMemory),
		MongoURI:      getEnvString("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnvString("MONGODB_DATABASE", "unitrade"),
		JWTSecret:     getEnvString("JWT_SECRET", "dev_secret"),
		TokenTTL:      tokenTTL,
		TickInterval:  tickInterval,
		SeedDemoUsers: getEnvBool("SEED_DEMO_USERS", false),
	}

	if cfg.StoreBackend != BackendMemory && cfg.StoreBackend != BackendMongo {
		return nil, fmt.Errorf("unknown STORE_BACKEND: %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
