package config

import (
	"testing"
	"time"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggest"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
)

var allVars = []string{
	"SUGGEST_API_URL", "X_API_KEY", "SUGGEST_API_TIMEOUT", "STORE_URL", "REDIS_URL",
	"DATABASE_URL", "BOARD_FEED_URL", "COMPUTER_COLOR", "COMPUTER_LEVEL",
	"PROMOTION_COLOR_SOURCE", "MESSAGES_DIR",
}

func clearEnv(t *testing.T) {
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SuggestURL != suggest.DefaultEndpoint || cfg.SuggestTimeout != 0 || cfg.APIKey != "" {
		t.Fatalf("transport defaults = %+v", cfg)
	}
	if cfg.Computer() != chessdto.DefaultComputerConfiguration() {
		t.Fatalf("computer = %+v", cfg.Computer())
	}
	if cfg.PromotionColorSource != PromotionConfigured || cfg.StoreTarget() != "" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUGGEST_API_URL", " http://localhost:9000/best ")
	t.Setenv("X_API_KEY", "secret")
	t.Setenv("SUGGEST_API_TIMEOUT", "3s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("COMPUTER_COLOR", "W")
	t.Setenv("COMPUTER_LEVEL", "4")
	t.Setenv("PROMOTION_COLOR_SOURCE", "Position")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SuggestURL != "http://localhost:9000/best" || cfg.APIKey != "secret" || cfg.SuggestTimeout != 3*time.Second {
		t.Fatalf("transport = %+v", cfg)
	}
	if cfg.ComputerColor != chessdto.White || cfg.ComputerLevel != 4 || cfg.PromotionColorSource != PromotionPosition {
		t.Fatalf("computer = %+v", cfg)
	}
	if cfg.StoreTarget() != "redis://localhost:6379/0" {
		t.Fatalf("store fallback = %q", cfg.StoreTarget())
	}
	t.Setenv("STORE_URL", "memory://")
	cfg, _ = Load()
	if cfg.StoreTarget() != "memory://" {
		t.Fatalf("store = %q", cfg.StoreTarget())
	}
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPUTER_LEVEL", "9")
	t.Setenv("SUGGEST_API_TIMEOUT", "soon")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ComputerLevel != 1 || cfg.SuggestTimeout != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadBadEnums(t *testing.T) {
	for k, v := range map[string]string{"COMPUTER_COLOR": "green", "PROMOTION_COLOR_SOURCE": "fen"} {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", k, v)
			}
		})
	}
}
