package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggest"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
)

const (
	PromotionConfigured = "configured"
	PromotionPosition   = "position"
)

type AppConfig struct {
	SuggestURL     string
	APIKey         string
	SuggestTimeout time.Duration // zero: no client-side deadline

	StoreURL    string
	RedisURL    string
	DatabaseURL string

	BoardFeedURL string

	ComputerColor        chessdto.Color
	ComputerLevel        int
	PromotionColorSource string

	MessagesDir string
}

// StoreTarget is STORE_URL, else REDIS_URL, else empty for the default file.
func (c *AppConfig) StoreTarget() string {
	if c.StoreURL != "" {
		return c.StoreURL
	}
	return c.RedisURL
}

func (c *AppConfig) Computer() chessdto.ComputerConfiguration {
	return chessdto.ComputerConfiguration{Color: c.ComputerColor, Level: c.ComputerLevel}
}

func Load() (*AppConfig, error) {
	def := chessdto.DefaultComputerConfiguration()
	cfg := &AppConfig{
		SuggestURL:           suggest.DefaultEndpoint,
		ComputerColor:        def.Color,
		ComputerLevel:        def.Level,
		PromotionColorSource: PromotionConfigured,
	}

	if v := env("SUGGEST_API_URL"); v != "" {
		cfg.SuggestURL = v
	}
	cfg.APIKey = env("X_API_KEY")
	if v := env("SUGGEST_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SuggestTimeout = d
		}
	}

	cfg.StoreURL = env("STORE_URL")
	cfg.RedisURL = env("REDIS_URL")
	cfg.DatabaseURL = env("DATABASE_URL")
	cfg.BoardFeedURL = env("BOARD_FEED_URL")
	cfg.MessagesDir = env("MESSAGES_DIR")

	if v := env("COMPUTER_COLOR"); v != "" {
		c, ok := chessdto.ParseColor(v)
		if !ok {
			return nil, fmt.Errorf("COMPUTER_COLOR must be white or black, got %q", v)
		}
		cfg.ComputerColor = c
	}
	if v := env("COMPUTER_LEVEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= chessdto.MinComputerLevel && n <= chessdto.MaxComputerLevel {
			cfg.ComputerLevel = n
		}
	}
	if v := strings.ToLower(env("PROMOTION_COLOR_SOURCE")); v != "" {
		switch v {
		case PromotionConfigured, PromotionPosition:
			cfg.PromotionColorSource = v
		default:
			return nil, fmt.Errorf("PROMOTION_COLOR_SOURCE must be %s or %s, got %q", PromotionConfigured, PromotionPosition, v)
		}
	}

	return cfg, nil
}

func env(k string) string { return strings.TrimSpace(os.Getenv(k)) }
