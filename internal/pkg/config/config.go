package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,        default=8080"`
	Env      string `env:"ENV,         default=development"`
	LogLevel string `env:"LOG_LEVEL,   default=info"`

	DBPath     string        `env:"DB_PATH,     default=strahovochka.db"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
