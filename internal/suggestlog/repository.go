// Package suggestlog journals completed suggestion requests in PostgreSQL.
package suggestlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	_ "github.com/lib/pq"
)

const (
	DefaultRecentLimit = 20
	maxRecentLimit     = 500
)

var ErrNoDatabase = errors.New("DATABASE_URL is required")

const schema = `CREATE TABLE IF NOT EXISTS suggestion_log (
    id            BIGSERIAL PRIMARY KEY,
    fen           TEXT        NOT NULL,
    feedback_sent BOOLEAN     NOT NULL DEFAULT FALSE,
    move_correct  BOOLEAN     NOT NULL DEFAULT FALSE,
    bad_move      TEXT        NOT NULL DEFAULT '',
    best_move     TEXT        NOT NULL,
    evaluation    TEXT        NOT NULL DEFAULT '',
    depth         TEXT        NOT NULL DEFAULT '',
    latency_ms    BIGINT      NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type Repository struct {
	db *sql.DB
}

func NewRepository(databaseURL string) (*Repository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, ErrNoDatabase
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("suggestlog ping: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r == nil || r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// Record inserts rec and fills in its ID and CreatedAt.
func (r *Repository) Record(ctx context.Context, rec *chessdto.SuggestionRecord) error {
	if r == nil || r.db == nil || rec == nil {
		return nil
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	q := `INSERT INTO suggestion_log (
        fen, feedback_sent, move_correct, bad_move, best_move,
        evaluation, depth, latency_ms, created_at
      ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
      RETURNING id, created_at`
	row := r.db.QueryRowContext(ctx, q,
		rec.FEN, rec.FeedbackSent, rec.IsMoveCorrect, rec.BadMove, rec.BestMove,
		rec.Evaluation, rec.Depth, latencyMillis(rec.Latency), created,
	)
	return row.Scan(&rec.ID, &rec.CreatedAt)
}

// Recent returns the newest records first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]chessdto.SuggestionRecord, error) {
	if r == nil || r.db == nil {
		return nil, ErrNoDatabase
	}
	q := `SELECT id, fen, feedback_sent, move_correct, bad_move, best_move,
        evaluation, depth, latency_ms, created_at
      FROM suggestion_log ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chessdto.SuggestionRecord
	for rows.Next() {
		var rec chessdto.SuggestionRecord
		var latency int64
		if err := rows.Scan(&rec.ID, &rec.FEN, &rec.FeedbackSent, &rec.IsMoveCorrect, &rec.BadMove,
			&rec.BestMove, &rec.Evaluation, &rec.Depth, &latency, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Latency = time.Duration(latency) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > maxRecentLimit:
		return maxRecentLimit
	default:
		return limit
	}
}

func latencyMillis(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}
