package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/movecodec"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/referee"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/suggest"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const spinnerCharset = 14

type moveView struct {
	UCI       string
	SAN       string
	Move      chessdto.ChessMove
	Promotion string
}

// chess-suggest move
func moveCmd(a *app) *cobra.Command {
	var noVerify bool
	cmd := &cobra.Command{
		Use:   "move <fen>",
		Short: "Get the computer's move for a position",
		Long: heredoc.Doc(`move sends the position to the suggestion service together
			with the verdict on the previous suggestion, then prints the
			decoded move.

			Unless --no-verify is given, the move is replayed on the
			position and the result is stored as the verdict sent with
			the next request. Use 'chess-suggest feedback' to set the
			verdict by hand.`),
		Example: `  chess-suggest move "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMove(cmd, args[0], !noVerify)
		},
	}
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Do not check the move or record a verdict")
	return cmd
}

func (a *app) runMove(cmd *cobra.Command, fen string, verify bool) error {
	ctx := cmd.Context()
	if !a.deps.Auth.IsAuthenticated(ctx) {
		return a.loginRequired()
	}

	s := spinner.New(spinner.CharSets[spinnerCharset], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = a.cat.Text("move.waiting", nil)
	s.Start()
	mv, err := a.deps.Service.BestMove(ctx, fen)
	s.Stop()
	if err != nil {
		if verify && errors.Is(err, suggest.ErrDecode) {
			if merr := a.deps.Service.MarkMove(ctx, false); merr != nil {
				return errors.Join(err, merr)
			}
		}
		return err
	}

	view := moveView{UCI: movecodec.Encode(mv), Move: mv}
	if mv.PromotedPiece != nil {
		view.Promotion = string(*mv.PromotedPiece)
	}
	if !verify {
		a.say(cmd, "move.suggested", view)
		return nil
	}

	verdict, err := referee.Check(fen, mv)
	if err != nil {
		return fmt.Errorf("verify move: %w", err)
	}
	view.SAN = verdict.SAN
	a.say(cmd, "move.suggested", view)
	if err := a.deps.Service.MarkMove(ctx, verdict.Legal); err != nil {
		return err
	}
	if !verdict.Legal {
		a.say(cmd, "move.illegal", verdict)
		return nil
	}
	a.say(cmd, "move.legal", verdict)
	if verdict.Outcome != "" {
		a.say(cmd, "move.outcome", verdict)
	}
	return nil
}
