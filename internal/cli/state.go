package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggestlog"
	"github.com/spf13/cobra"
)

// chess-suggest feedback
func feedbackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "feedback { correct | incorrect }",
		Short:     "Set the verdict on the last suggested move",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"correct", "incorrect"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var correct bool
			switch strings.ToLower(strings.TrimSpace(args[0])) {
			case "correct", "ok", "true":
				correct = true
			case "incorrect", "bad", "false":
				correct = false
			default:
				return fmt.Errorf("%s", a.cat.Text("feedback.usage", map[string]any{"Arg": args[0]}))
			}
			if err := a.deps.Service.MarkMove(cmd.Context(), correct); err != nil {
				return err
			}
			a.say(cmd, "feedback.recorded", map[string]any{"Correct": correct})
			return nil
		},
	}
}

// chess-suggest state
func stateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show what the next request will send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.deps.Service.Feedback(cmd.Context())
			if err != nil {
				return err
			}
			comp := a.deps.Computer.Value()
			store := a.cfg.StoreTarget()
			if store == "" {
				store = "default file"
			}
			a.say(cmd, "state.summary", map[string]any{
				"BestMove":      st.BadMove,
				"IsMoveCorrect": st.IsMoveCorrect,
				"Color":         comp.Color,
				"Level":         comp.Level,
				"Endpoint":      a.deps.Client.Endpoint(),
				"Store":         store,
			})
			return nil
		},
	}
}

// chess-suggest history
func historyCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent suggestions from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.deps.Journal == nil {
				a.say(cmd, "history.disabled", nil)
				return nil
			}
			recs, err := a.deps.Journal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				a.say(cmd, "history.empty", nil)
				return nil
			}
			for _, r := range recs {
				a.say(cmd, "history.row", map[string]any{
					"When":         r.CreatedAt.Local().Format(time.DateTime),
					"BestMove":     r.BestMove,
					"Latency":      r.Latency.Round(time.Millisecond).String(),
					"FeedbackSent": r.FeedbackSent,
					"BadMove":      r.BadMove,
					"FEN":          r.FEN,
				})
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", suggestlog.DefaultRecentLimit, "Number of entries")
	return cmd
}
