// Package cli is the chess-suggest command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/config"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/msgcat"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/obslog"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggestbuilder"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg  *config.AppConfig
	deps *suggestbuilder.Deps
	cat  *msgcat.Catalog
}

func (a *app) say(cmd *cobra.Command, key string, data any) {
	fmt.Fprintln(cmd.OutOrStdout(), a.cat.Text(key, data))
}

func Root() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "chess-suggest",
		Short: "Ask the move-suggestion service for the computer's next move",
		Long: heredoc.Doc(`chess-suggest asks a remote engine for the best move in a
			position and decodes it into board coordinates.

			The result of the previous suggestion is sent along with each
			request: when the board rejected the last move, the engine is
			told which move was bad. That state lives in a small key/value
			store selected with --store or STORE_URL.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.deps.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("trace", "t", false, "Show debug logging")
	flags.String("store", "", "State store URL (memory://, file:///path, redis://host)")
	flags.String("color", "", "Color played by the computer (white or black)")
	flags.Int("level", 0, "Computer level (1-5)")

	root.AddCommand(loginCmd(a), logoutCmd(a), whoamiCmd(a))
	root.AddCommand(moveCmd(a), feedbackCmd(a))
	root.AddCommand(stateCmd(a), historyCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := obslog.InitFromEnv(); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if cmd.Flag("trace").Changed {
		obslog.SetLevel(zapcore.DebugLevel)
	}
	logger := obslog.L()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.StoreURL = v
	}
	a.cfg = cfg

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return fmt.Errorf("messages: %w", err)
	}
	a.cat = cat

	deps, err := suggestbuilder.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	a.deps = deps

	return a.applyComputerFlags(cmd)
}

func (a *app) applyComputerFlags(cmd *cobra.Command) error {
	colorSet := cmd.Flag("color").Changed
	levelSet := cmd.Flag("level").Changed
	if !colorSet && !levelSet {
		return nil
	}
	next := a.deps.Computer.Value()
	if colorSet {
		raw, _ := cmd.Flags().GetString("color")
		c, ok := chessdto.ParseColor(raw)
		if !ok {
			return fmt.Errorf("--color must be white or black, got %q", raw)
		}
		next.Color = c
	}
	if levelSet {
		next.Level, _ = cmd.Flags().GetInt("level")
	}
	if err := a.deps.Computer.Update(next); err != nil {
		return err
	}
	obslog.L().Debug("computer_flags_applied", zap.String("color", string(next.Color)), zap.Int("level", next.Level))
	return nil
}

var errLoginRequired = errors.New("login required")
