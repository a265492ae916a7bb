package boardfeed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// HeaderProvider supplies handshake headers.
type HeaderProvider func() map[string]string

// WebSocket writes move frames to a board endpoint. It dials on first use and
// redials once when a write fails.
type WebSocket struct {
	url     string
	headers HeaderProvider
	logger  *zap.Logger

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func NewWebSocket(url string, headers HeaderProvider, logger *zap.Logger) *WebSocket {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebSocket{url: strings.TrimSpace(url), headers: headers, logger: logger}
}

func (w *WebSocket) Publish(ctx context.Context, move chessdto.ChessMove) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	frame := NewFrame(move)

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		if w.conn == nil {
			if err := w.dial(ctx); err != nil {
				return err
			}
		}
		if err := w.write(ctx, &frame); err != nil {
			lastErr = err
			w.logger.Warn("board_feed_write_failed", zap.Int("attempt", attempt), zap.Error(err))
			_ = w.conn.Close(websocket.StatusGoingAway, "write failure")
			w.conn = nil
			continue
		}
		w.logger.Debug("board_feed_publish", zap.String("uci", frame.UCI))
		return nil
	}
	return lastErr
}

func (w *WebSocket) dial(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	hdr := http.Header{}
	if w.headers != nil {
		for k, v := range w.headers() {
			if strings.TrimSpace(k) != "" && strings.TrimSpace(v) != "" {
				hdr.Set(k, v)
			}
		}
	}
	conn, _, err := websocket.Dial(dialCtx, w.url, &websocket.DialOptions{
		HTTPHeader:      hdr,
		CompressionMode: websocket.CompressionNoContextTakeover,
	})
	if err != nil {
		return fmt.Errorf("board feed dial: %w", err)
	}
	w.conn = conn
	w.logger.Info("board_feed_connected", zap.String("url", w.url))
	return nil
}

func (w *WebSocket) write(ctx context.Context, v any) error {
	wctx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, writeTimeout)
		defer cancel()
	}
	return wsjson.Write(wctx, w.conn, v)
}

func (w *WebSocket) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close(websocket.StatusNormalClosure, "close")
	w.conn = nil
	return err
}
