// Package boardfeed pushes decoded moves back into board state, either
// in-process or to a board UI over WebSocket.
package boardfeed

import (
	"context"
	"errors"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/movecodec"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
)

var ErrClosed = errors.New("board feed closed")

type Publisher interface {
	Publish(ctx context.Context, move chessdto.ChessMove) error
	Close() error
}

// Frame is the JSON message written to remote boards.
type Frame struct {
	Type string             `json:"type"`
	UCI  string             `json:"uci"`
	Move chessdto.ChessMove `json:"move"`
}

func NewFrame(move chessdto.ChessMove) Frame {
	return Frame{Type: "move", UCI: movecodec.Encode(move), Move: move}
}

type nop struct{}

// Nop discards every move.
func Nop() Publisher { return nop{} }

func (nop) Publish(context.Context, chessdto.ChessMove) error { return nil }
func (nop) Close() error                                      { return nil }
