package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// ErrMissingToken is returned when no Discord token is configured.
var ErrMissingToken = errors.New("DISCORD_TOKEN is not set")

// Config is read once at startup and never persisted.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`

	// CallTimeout bounds invite creation and voice joins.
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"15s"`

	ReplyRate    float64 `env:"REPLY_RATE" envDefault:"5"`
	ReplyRateMin float64 `env:"REPLY_RATE_MIN" envDefault:"1"`
	ReplyRateMax float64 `env:"REPLY_RATE_MAX" envDefault:"10"`

	// HealthAddr enables the status endpoint when non-empty, e.g. ":8787".
	HealthAddr string `env:"HEALTH_ADDR"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DiscordToken == "" {
		cfg.DiscordToken = os.Getenv("TOKEN")
	}
	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}
	if cfg.CallTimeout <= 0 {
		return nil, fmt.Errorf("CALL_TIMEOUT must be positive, got %s", cfg.CallTimeout)
	}
	if cfg.ReplyRateMin <= 0 || cfg.ReplyRateMax < cfg.ReplyRateMin {
		return nil, fmt.Errorf("invalid reply rate bounds: min=%v max=%v", cfg.ReplyRateMin, cfg.ReplyRateMax)
	}

	return &cfg, nil
}
