package chessdto

import (
	"strings"
)

// Color identifies a chess side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// ParseColor accepts white|w|black|b in any case.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return "", false
	}
}

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool { return c == White || c == Black }

// FENChar is a single FEN piece letter. Uppercase is White, lowercase is Black.
type FENChar string

const (
	WhiteKing   FENChar = "K"
	WhiteQueen  FENChar = "Q"
	WhiteRook   FENChar = "R"
	WhiteBishop FENChar = "B"
	WhiteKnight FENChar = "N"
	WhitePawn   FENChar = "P"
	BlackKing   FENChar = "k"
	BlackQueen  FENChar = "q"
	BlackRook   FENChar = "r"
	BlackBishop FENChar = "b"
	BlackKnight FENChar = "n"
	BlackPawn   FENChar = "p"
)

// Color reports which side the piece belongs to.
func (f FENChar) Color() Color {
	if strings.ToUpper(string(f)) == string(f) {
		return White
	}
	return Black
}

// ChessMove is a decoded engine move in board-model coordinates.
// X is the zero-based row (rank), Y the zero-based column (file).
type ChessMove struct {
	PrevX         int      `json:"prevX"`
	PrevY         int      `json:"prevY"`
	NewX          int      `json:"newX"`
	NewY          int      `json:"newY"`
	PromotedPiece *FENChar `json:"promotedPiece"`
}

// Promotion returns the promoted piece or "" when the move is not a promotion.
func (m ChessMove) Promotion() FENChar {
	if m.PromotedPiece == nil {
		return ""
	}
	return *m.PromotedPiece
}
