package boardfeed

import (
	"context"
	"sync"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
)

// Channel delivers moves to an in-process reader.
type Channel struct {
	mu     sync.RWMutex
	ch     chan chessdto.ChessMove
	closed bool
}

func NewChannel(buffer int) *Channel {
	if buffer < 0 {
		buffer = 0
	}
	return &Channel{ch: make(chan chessdto.ChessMove, buffer)}
}

// Moves is closed by Close.
func (c *Channel) Moves() <-chan chessdto.ChessMove { return c.ch }

// Publish blocks until the move is taken, the buffer has room or ctx ends.
func (c *Channel) Publish(ctx context.Context, move chessdto.ChessMove) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.ch <- move:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.ch)
	}
	return nil
}
