package chessdto

import "time"

// SuggestionRecord is one completed request/response cycle against the
// suggestion service.
type SuggestionRecord struct {
	ID            int64
	FEN           string
	FeedbackSent  bool
	IsMoveCorrect bool
	BadMove       string
	BestMove      string
	Evaluation    string
	Depth         string
	Latency       time.Duration
	CreatedAt     time.Time
}
