// Package feedback keeps the "was the last suggestion legal" state that shapes
// the next suggestion request.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/kvstore"
)

const (
	KeyIsMoveCorrect = "is_move_correct"
	KeyBestMove      = "bestMove"
)

// State is the persisted feedback read before each request.
type State struct {
	IsMoveCorrect bool
	BadMove       string
}

// Load reads both values. A missing or unparsable flag reads as false and a
// missing move as "". Only store failures are returned as errors.
func Load(ctx context.Context, store kvstore.Store) (State, error) {
	var st State
	raw, ok, err := store.Get(ctx, KeyIsMoveCorrect)
	if err != nil {
		return State{}, fmt.Errorf("read %s: %w", KeyIsMoveCorrect, err)
	}
	if ok {
		st.IsMoveCorrect = parseFlag(raw)
	}
	move, ok, err := store.Get(ctx, KeyBestMove)
	if err != nil {
		return State{}, fmt.Errorf("read %s: %w", KeyBestMove, err)
	}
	if ok {
		st.BadMove = move
	}
	return st, nil
}

// parseFlag accepts any JSON value; only a true boolean counts as true.
func parseFlag(raw string) bool {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// RecordSuggestion overwrites the last suggested move.
func RecordSuggestion(ctx context.Context, store kvstore.Store, move string) error {
	if err := store.Set(ctx, KeyBestMove, move); err != nil {
		return fmt.Errorf("write %s: %w", KeyBestMove, err)
	}
	return nil
}

// MarkMove records whether the last suggested move was accepted.
func MarkMove(ctx context.Context, store kvstore.Store, correct bool) error {
	if err := store.Set(ctx, KeyIsMoveCorrect, strconv.FormatBool(correct)); err != nil {
		return fmt.Errorf("write %s: %w", KeyIsMoveCorrect, err)
	}
	return nil
}
