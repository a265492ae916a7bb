// Package suggestbuilder wires the suggestion service and its collaborators
// from configuration.
package suggestbuilder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/auth"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/boardfeed"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/computer"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/config"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/kvstore"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/movecodec"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggest"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggestlog"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"go.uber.org/zap"
)

type Deps struct {
	Service  *suggest.Service
	Client   *suggest.Client
	Store    kvstore.Store
	Computer *computer.Cell
	Auth     *auth.Gate
	Feed     boardfeed.Publisher
	Journal  *suggestlog.Repository // nil without DATABASE_URL
}

func New(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cell, err := computer.NewCell(cfg.Computer())
	if err != nil {
		return nil, fmt.Errorf("computer configuration: %w", err)
	}
	cell.Subscribe(func(c chessdto.ComputerConfiguration) {
		logger.Info("computer_config_changed", zap.String("color", string(c.Color)), zap.Int("level", c.Level))
	})

	store, err := kvstore.Open(ctx, cfg.StoreTarget())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	d := &Deps{Store: store, Computer: cell, Auth: auth.NewGate(store, logger)}

	var opts []suggest.Option
	if cfg.SuggestTimeout > 0 {
		opts = append(opts, suggest.WithTimeout(cfg.SuggestTimeout))
	}
	d.Client = suggest.NewClient(cfg.SuggestURL, cfg.APIKey, opts...)

	svc, err := suggest.NewService(d.Client, store, movecodec.New(cell), suggest.Config{
		PromotionFromPosition: cfg.PromotionColorSource == config.PromotionPosition,
	}, logger)
	if err != nil {
		_ = d.Close()
		return nil, err
	}
	d.Service = svc

	d.Feed = boardfeed.Nop()
	if url := strings.TrimSpace(cfg.BoardFeedURL); url != "" {
		key := cfg.APIKey
		d.Feed = boardfeed.NewWebSocket(url, func() map[string]string {
			return map[string]string{suggest.HeaderAPIKey: key}
		}, logger)
		svc.AttachPublisher(d.Feed)
	}

	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		repo, err := suggestlog.NewRepository(cfg.DatabaseURL)
		if err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("init suggestion journal: %w", err)
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = repo.Close()
			_ = d.Close()
			return nil, fmt.Errorf("suggestion journal schema: %w", err)
		}
		d.Journal = repo
		svc.AttachJournal(repo)
	}

	logger.Debug("suggest_deps_ready",
		zap.String("endpoint", d.Client.Endpoint()),
		zap.Bool("board_feed", cfg.BoardFeedURL != ""),
		zap.Bool("journal", d.Journal != nil),
	)
	return d, nil
}

func (d *Deps) Close() error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.Feed != nil {
		errs = append(errs, d.Feed.Close())
	}
	if d.Journal != nil {
		errs = append(errs, d.Journal.Close())
	}
	if d.Store != nil {
		errs = append(errs, d.Store.Close())
	}
	return errors.Join(errs...)
}
