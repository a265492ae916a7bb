// Package suggest runs one request/response cycle against the remote
// move-suggestion service and decodes the reply into a board move.
package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/feedback"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/kvstore"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/movecodec"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"go.uber.org/zap"
)

// Suggester is the transport; *Client implements it.
type Suggester interface {
	Suggest(ctx context.Context, body RequestBody) (*Response, error)
}

// Publisher pushes decoded moves into board state.
type Publisher interface {
	Publish(ctx context.Context, move chessdto.ChessMove) error
}

// Journal stores completed suggestions.
type Journal interface {
	Record(ctx context.Context, rec *chessdto.SuggestionRecord) error
}

type Config struct {
	// PromotionFromPosition colors promotions by the FEN side to move instead
	// of the configured computer color.
	PromotionFromPosition bool
}

type Service struct {
	client  Suggester
	store   kvstore.Store
	codec   *movecodec.Codec
	cfg     Config
	feed    Publisher
	journal Journal
	logger  *zap.Logger
}

func NewService(client Suggester, store kvstore.Store, codec *movecodec.Codec, cfg Config, logger *zap.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("suggest: nil client")
	}
	if store == nil {
		return nil, fmt.Errorf("suggest: nil store")
	}
	if codec == nil {
		codec = movecodec.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, store: store, codec: codec, cfg: cfg, logger: logger}, nil
}

// AttachPublisher wires the board feed. Publish failures are logged only.
func (s *Service) AttachPublisher(p Publisher) {
	if s != nil {
		s.feed = p
	}
}

// AttachJournal wires the suggestion journal. Record failures are logged only.
func (s *Service) AttachJournal(j Journal) {
	if s != nil {
		s.journal = j
	}
}

// BestMove asks the service for a move in fen. A successful reply always
// overwrites the stored last move, even when it then fails to decode, so the
// next request can report it as bad. Failed requests leave storage untouched.
func (s *Service) BestMove(ctx context.Context, fen string) (chessdto.ChessMove, error) {
	st, err := feedback.Load(ctx, s.store)
	if err != nil {
		return chessdto.ChessMove{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	body := NewRequestBody(fen, st)
	s.logger.Debug("suggest_request",
		zap.String("fen", fen),
		zap.Bool("feedback", body.HasFeedback()),
		zap.String("bad_move", st.BadMove),
	)

	start := time.Now()
	resp, err := s.client.Suggest(ctx, body)
	latency := time.Since(start)
	if err != nil {
		s.logger.Warn("suggest_failed", zap.String("fen", fen), zap.Duration("latency", latency), zap.Error(err))
		return chessdto.ChessMove{}, err
	}

	if err := feedback.RecordSuggestion(ctx, s.store, resp.BestMove); err != nil {
		return chessdto.ChessMove{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	move, err := s.decode(fen, resp.BestMove)
	if err != nil {
		s.logger.Warn("suggest_decode_failed", zap.String("best_move", resp.BestMove), zap.Error(err))
		return chessdto.ChessMove{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	s.logger.Info("suggest_response",
		zap.String("best_move", resp.BestMove),
		zap.String("evaluation", resp.Evaluation),
		zap.String("depth", resp.Depth),
		zap.Duration("latency", latency),
	)

	if s.feed != nil {
		if err := s.feed.Publish(ctx, move); err != nil {
			s.logger.Warn("board_feed_publish_failed", zap.String("best_move", resp.BestMove), zap.Error(err))
		}
	}
	if s.journal != nil {
		rec := &chessdto.SuggestionRecord{
			FEN:           fen,
			FeedbackSent:  body.HasFeedback(),
			IsMoveCorrect: st.IsMoveCorrect,
			BadMove:       st.BadMove,
			BestMove:      resp.BestMove,
			Evaluation:    resp.Evaluation,
			Depth:         resp.Depth,
			Latency:       latency,
			CreatedAt:     time.Now(),
		}
		if err := s.journal.Record(ctx, rec); err != nil {
			s.logger.Warn("suggest_journal_failed", zap.Error(err))
		}
	}
	return move, nil
}

func (s *Service) decode(fen, move string) (chessdto.ChessMove, error) {
	if s.cfg.PromotionFromPosition {
		return s.codec.DecodeForPosition(fen, move)
	}
	return s.codec.Decode(move)
}

// Feedback returns the state the next request will be built from.
func (s *Service) Feedback(ctx context.Context) (feedback.State, error) {
	st, err := feedback.Load(ctx, s.store)
	if err != nil {
		return feedback.State{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return st, nil
}

// MarkMove records the caller's verdict on the last suggestion.
func (s *Service) MarkMove(ctx context.Context, correct bool) error {
	if err := feedback.MarkMove(ctx, s.store, correct); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	s.logger.Info("suggest_feedback", zap.Bool("is_move_correct", correct))
	return nil
}
