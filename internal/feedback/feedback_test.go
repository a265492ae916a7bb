package feedback

import (
	"context"
	"testing"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/kvstore"
)

func TestLoadDefaults(t *testing.T) {
	st, err := Load(context.Background(), kvstore.NewMemory())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.IsMoveCorrect || st.BadMove != "" {
		t.Fatalf("defaults = %+v", st)
	}
}

func TestLoadFlagParsing(t *testing.T) {
	cases := map[string]bool{
		"true":      true,
		" true ":    true,
		"false":     false,
		"":          false,
		"TRUE":      false,
		"1":         false,
		"\"true\"":  false,
		"undefined": false,
		"{":         false,
	}
	ctx := context.Background()
	for raw, want := range cases {
		s := kvstore.NewMemory()
		_ = s.Set(ctx, KeyIsMoveCorrect, raw)
		st, err := Load(ctx, s)
		if err != nil {
			t.Fatalf("Load(%q): %v", raw, err)
		}
		if st.IsMoveCorrect != want {
			t.Fatalf("flag %q parsed as %v, want %v", raw, st.IsMoveCorrect, want)
		}
	}
}

func TestRecordAndMark(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewMemory()
	if err := RecordSuggestion(ctx, s, "d2d4"); err != nil {
		t.Fatalf("RecordSuggestion: %v", err)
	}
	if err := MarkMove(ctx, s, false); err != nil {
		t.Fatalf("MarkMove: %v", err)
	}
	st, _ := Load(ctx, s)
	if st.IsMoveCorrect || st.BadMove != "d2d4" {
		t.Fatalf("state = %+v", st)
	}
	_ = MarkMove(ctx, s, true)
	if st, _ := Load(ctx, s); !st.IsMoveCorrect {
		t.Fatalf("expected correct flag")
	}
}
