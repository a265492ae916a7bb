package suggest

import (
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/feedback"
)

// RequestBody is the outgoing JSON. IsMoveCorrect and BadMove are either both
// set or both omitted; omission tells the service no correction is needed.
type RequestBody struct {
	FEN           string  `json:"fen"`
	IsMoveCorrect *bool   `json:"is_move_correct,omitempty"`
	BadMove       *string `json:"bad_move,omitempty"`
}

func NewRequestBody(fen string, st feedback.State) RequestBody {
	body := RequestBody{FEN: fen}
	if !st.IsMoveCorrect {
		correct := false
		bad := st.BadMove
		body.IsMoveCorrect = &correct
		body.BadMove = &bad
	}
	return body
}

// HasFeedback reports whether the correction fields are present.
func (b RequestBody) HasFeedback() bool { return b.IsMoveCorrect != nil }

// Response is the service reply. Only BestMove is needed; the rest is logged.
type Response struct {
	BestMove   string `json:"best_move" validate:"required"`
	Evaluation string `json:"evaluation,omitempty"`
	Depth      string `json:"depth,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}
