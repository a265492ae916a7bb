// Package referee checks suggested moves against the rules of chess so the
// caller can record whether the suggestion was correct.
package referee

import (
	"fmt"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/movecodec"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	nchess "github.com/corentings/chess/v2"
)

// Verdict describes a suggested move in a given position.
type Verdict struct {
	Move    string
	Legal   bool
	Reason  string
	SAN     string
	NextFEN string
	Outcome string
}

// Check replays move on fen. Illegal moves are a Verdict, not an error; only
// an unreadable position is an error.
func Check(fen string, move chessdto.ChessMove) (Verdict, error) {
	game, err := movecodec.LoadPosition(fen)
	if err != nil {
		return Verdict{}, err
	}
	uci := movecodec.Encode(move)
	v := Verdict{Move: uci}
	if err := movecodec.Validate(uci); err != nil {
		v.Reason = err.Error()
		return v, nil
	}

	pos := game.Position()
	mv, err := nchess.UCINotation{}.Decode(pos, uci)
	if err != nil {
		v.Reason = fmt.Sprintf("not a move in this position: %v", err)
		return v, nil
	}
	san := nchess.AlgebraicNotation{}.Encode(pos, mv)
	if err := game.PushNotationMove(uci, nchess.UCINotation{}, nil); err != nil {
		v.Reason = fmt.Sprintf("illegal move: %v", err)
		return v, nil
	}
	v.Legal = true
	v.SAN = san
	v.NextFEN = game.FEN()
	if o := game.Outcome(); o != nchess.NoOutcome {
		v.Outcome = fmt.Sprintf("%s %s", o, game.Method())
	}
	return v, nil
}

// SideToMove is the active color of fen.
func SideToMove(fen string) (chessdto.Color, error) {
	return movecodec.SideToMove(fen)
}
