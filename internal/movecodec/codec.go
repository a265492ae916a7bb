// Package movecodec translates engine move strings such as "e2e4" or "a7a8q"
// into board-model moves.
package movecodec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
)

var ErrMalformedMove = errors.New("malformed engine move")

// ColorSource yields the side currently played by the computer.
type ColorSource interface {
	Color() chessdto.Color
}

// FixedColor is a ColorSource that never changes.
type FixedColor chessdto.Color

func (c FixedColor) Color() chessdto.Color { return chessdto.Color(c) }

// DecodeColumn maps a file letter a..h to column 0..7. Input outside a..h is not checked.
func DecodeColumn(file byte) int {
	return int(file) - int('a')
}

// DecodeRow maps a rank digit 1..8 to row 0..7. Input outside 1..8 is not checked.
func DecodeRow(rank byte) int {
	return int(rank-'0') - 1
}

// PromotedPiece resolves the optional fifth move character. Anything other
// than n, b or r promotes to a queen.
func PromotedPiece(letter string, color chessdto.Color) *chessdto.FENChar {
	if letter == "" {
		return nil
	}
	white := color == chessdto.White
	var piece chessdto.FENChar
	switch letter {
	case "n":
		piece = pick(white, chessdto.WhiteKnight, chessdto.BlackKnight)
	case "b":
		piece = pick(white, chessdto.WhiteBishop, chessdto.BlackBishop)
	case "r":
		piece = pick(white, chessdto.WhiteRook, chessdto.BlackRook)
	default:
		piece = pick(white, chessdto.WhiteQueen, chessdto.BlackQueen)
	}
	return &piece
}

func pick(white bool, w, b chessdto.FENChar) chessdto.FENChar {
	if white {
		return w
	}
	return b
}

type Codec struct {
	colors ColorSource
}

func New(colors ColorSource) *Codec {
	if colors == nil {
		colors = FixedColor(chessdto.Black)
	}
	return &Codec{colors: colors}
}

// Decode converts an engine move. The promotion piece takes the color the
// computer is configured to play at the time of the call.
func (c *Codec) Decode(move string) (chessdto.ChessMove, error) {
	return decode(move, c.colors.Color())
}

// DecodeForPosition colors a promotion by the side to move in fen instead of
// the configured computer color.
func (c *Codec) DecodeForPosition(fen, move string) (chessdto.ChessMove, error) {
	color, err := SideToMove(fen)
	if err != nil {
		return chessdto.ChessMove{}, err
	}
	return decode(move, color)
}

func decode(move string, color chessdto.Color) (chessdto.ChessMove, error) {
	if err := Validate(move); err != nil {
		return chessdto.ChessMove{}, err
	}
	return chessdto.ChessMove{
		PrevY:         DecodeColumn(move[0]),
		PrevX:         DecodeRow(move[1]),
		NewY:          DecodeColumn(move[2]),
		NewX:          DecodeRow(move[3]),
		PromotedPiece: PromotedPiece(move[4:], color),
	}, nil
}

// Validate checks the fixed move layout: file, rank, file, rank and an
// optional fifth character, which is accepted as-is.
func Validate(move string) error {
	if len(move) != 4 && len(move) != 5 {
		return fmt.Errorf("%w: %q: want 4 or 5 characters", ErrMalformedMove, move)
	}
	for i := 0; i < 4; i += 2 {
		if move[i] < 'a' || move[i] > 'h' {
			return fmt.Errorf("%w: %q: bad file %q", ErrMalformedMove, move, move[i])
		}
		if move[i+1] < '1' || move[i+1] > '8' {
			return fmt.Errorf("%w: %q: bad rank %q", ErrMalformedMove, move, move[i+1])
		}
	}
	return nil
}

// Encode is the inverse of Decode.
func Encode(m chessdto.ChessMove) string {
	var b strings.Builder
	b.WriteByte(byte('a' + m.PrevY))
	b.WriteByte(byte('1' + m.PrevX))
	b.WriteByte(byte('a' + m.NewY))
	b.WriteByte(byte('1' + m.NewX))
	if p := m.Promotion(); p != "" {
		b.WriteString(strings.ToLower(string(p)))
	}
	return b.String()
}
