package movecodec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	nchess "github.com/corentings/chess/v2"
)

var ErrInvalidPosition = errors.New("invalid FEN position")

// LoadPosition parses fen into a game positioned at that FEN.
func LoadPosition(fen string) (*nchess.Game, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPosition)
	}
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	return nchess.NewGame(opt), nil
}

// SideToMove reads the active color field of fen.
func SideToMove(fen string) (chessdto.Color, error) {
	game, err := LoadPosition(fen)
	if err != nil {
		return "", err
	}
	if game.Position().Turn() == nchess.White {
		return chessdto.White, nil
	}
	return chessdto.Black, nil
}
