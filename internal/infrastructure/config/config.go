package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds how long a session survives in the store without a
	// logout. Tokens expire at the same horizon.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// LoginDelay and CheckoutDelay reproduce the processing pauses of the
	// reference deployment. Set to 0 to disable.
	LoginDelay    time.Duration `env:"LOGIN_DELAY,    default=800ms"`
	CheckoutDelay time.Duration `env:"CHECKOUT_DELAY, default=2s"`

	// StoreDriver selects the persistence backend for catalog, order, and
	// account data: "memory" (seeded demo data) or "mongo".
	StoreDriver string `env:"STORE_DRIVER, default=memory"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=invenflow"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.StoreDriver != "memory" && cfg.StoreDriver != "mongo" {
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
