package movecodec

import (
	"errors"
	"testing"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"github.com/google/go-cmp/cmp"
)

func piece(f chessdto.FENChar) *chessdto.FENChar { return &f }

func TestDecodeColumnAllFiles(t *testing.T) {
	for i, f := range "abcdefgh" {
		if got := DecodeColumn(byte(f)); got != i {
			t.Fatalf("DecodeColumn(%q) = %d, want %d", f, got, i)
		}
	}
}

func TestDecodeRowAllRanks(t *testing.T) {
	for r := byte('1'); r <= '8'; r++ {
		if got, want := DecodeRow(r), int(r-'1'); got != want {
			t.Fatalf("DecodeRow(%q) = %d, want %d", r, got, want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		move  string
		color chessdto.Color
		want  chessdto.ChessMove
	}{
		{
			name:  "quiet move",
			move:  "e2e4",
			color: chessdto.Black,
			want:  chessdto.ChessMove{PrevY: 4, PrevX: 1, NewY: 4, NewX: 3},
		},
		{
			name:  "queen promotion white",
			move:  "a7a8q",
			color: chessdto.White,
			want:  chessdto.ChessMove{PrevY: 0, PrevX: 6, NewY: 0, NewX: 7, PromotedPiece: piece(chessdto.WhiteQueen)},
		},
		{
			name:  "queen promotion black",
			move:  "a7a8q",
			color: chessdto.Black,
			want:  chessdto.ChessMove{PrevY: 0, PrevX: 6, NewY: 0, NewX: 7, PromotedPiece: piece(chessdto.BlackQueen)},
		},
		{
			name:  "knight underpromotion",
			move:  "h2g1n",
			color: chessdto.Black,
			want:  chessdto.ChessMove{PrevY: 7, PrevX: 1, NewY: 6, NewX: 0, PromotedPiece: piece(chessdto.BlackKnight)},
		},
		{
			name:  "bishop",
			move:  "b7b8b",
			color: chessdto.White,
			want:  chessdto.ChessMove{PrevY: 1, PrevX: 6, NewY: 1, NewX: 7, PromotedPiece: piece(chessdto.WhiteBishop)},
		},
		{
			name:  "rook",
			move:  "c2c1r",
			color: chessdto.Black,
			want:  chessdto.ChessMove{PrevY: 2, PrevX: 1, NewY: 2, NewX: 0, PromotedPiece: piece(chessdto.BlackRook)},
		},
		{
			name:  "unknown letter is queen",
			move:  "c2c1x",
			color: chessdto.White,
			want:  chessdto.ChessMove{PrevY: 2, PrevX: 1, NewY: 2, NewX: 0, PromotedPiece: piece(chessdto.WhiteQueen)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(FixedColor(tc.color)).Decode(tc.move)
			if err != nil {
				t.Fatalf("Decode(%q): %v", tc.move, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Decode(%q) mismatch (-want +got):\n%s", tc.move, diff)
			}
		})
	}
}

type switchable struct{ c chessdto.Color }

func (s *switchable) Color() chessdto.Color { return s.c }

func TestDecodeReadsColorAtCallTime(t *testing.T) {
	src := &switchable{c: chessdto.White}
	codec := New(src)
	m1, _ := codec.Decode("a7a8q")
	src.c = chessdto.Black
	m2, _ := codec.Decode("a7a8q")
	if m1.Promotion() != chessdto.WhiteQueen || m2.Promotion() != chessdto.BlackQueen {
		t.Fatalf("promotion colors = %q, %q", m1.Promotion(), m2.Promotion())
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, mv := range []string{"", "e2", "e2e", "e2e4qq", "i2e4", "e9e4", "e2e0", "E2E4", "(none)"} {
		if _, err := New(nil).Decode(mv); !errors.Is(err, ErrMalformedMove) {
			t.Fatalf("Decode(%q) err = %v, want ErrMalformedMove", mv, err)
		}
	}
}

func TestPromotedPieceAbsent(t *testing.T) {
	if p := PromotedPiece("", chessdto.White); p != nil {
		t.Fatalf("expected nil, got %q", *p)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, mv := range []string{"e2e4", "g1f3", "a7a8q", "h2g1n", "b2b1r"} {
		m, err := New(nil).Decode(mv)
		if err != nil {
			t.Fatalf("Decode(%q): %v", mv, err)
		}
		if got := Encode(m); got != mv {
			t.Fatalf("Encode(Decode(%q)) = %q", mv, got)
		}
	}
}

func TestDecodeForPosition(t *testing.T) {
	const whiteToMove = "8/P7/8/8/8/8/8/k6K w - - 0 1"
	m, err := New(FixedColor(chessdto.Black)).DecodeForPosition(whiteToMove, "a7a8q")
	if err != nil {
		t.Fatalf("DecodeForPosition: %v", err)
	}
	if m.Promotion() != chessdto.WhiteQueen {
		t.Fatalf("promotion = %q, want Q", m.Promotion())
	}
	if _, err := New(nil).DecodeForPosition("not a fen", "e2e4"); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestSideToMove(t *testing.T) {
	c, err := SideToMove("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil || c != chessdto.Black {
		t.Fatalf("SideToMove = %q, %v", c, err)
	}
}
