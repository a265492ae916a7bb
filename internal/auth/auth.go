// Package auth is the local login gate. It only records who is playing; there
// is no server-side check.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/internal/kvstore"
	"github.com/PulkitArora-developer/chess-game-bedrock-amazon/pkg/chessdto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const KeyUserData = "userdata"

var ErrNotLoggedIn = errors.New("not logged in")

type Gate struct {
	store  kvstore.Store
	logger *zap.Logger
}

func NewGate(store kvstore.Store, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{store: store, logger: logger}
}

// Login stores a new user record with a fresh uid, replacing any previous one.
func (g *Gate) Login(ctx context.Context, email, name string) (*chessdto.UserData, error) {
	user := chessdto.UserData{
		Email: strings.TrimSpace(email),
		Name:  strings.TrimSpace(name),
		UID:   uuid.NewString(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := g.store.Set(ctx, KeyUserData, string(raw)); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	g.logger.Info("auth_login", zap.String("uid", user.UID), zap.String("name", user.Name))
	return &user, nil
}

// IsAuthenticated is true when any non-empty user record is stored.
func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	raw, ok, err := g.store.Get(ctx, KeyUserData)
	if err != nil {
		g.logger.Warn("auth_read_failed", zap.Error(err))
		return false
	}
	return ok && strings.TrimSpace(raw) != ""
}

func (g *Gate) User(ctx context.Context) (*chessdto.UserData, error) {
	raw, ok, err := g.store.Get(ctx, KeyUserData)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrNotLoggedIn
	}
	var user chessdto.UserData
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Delete(ctx, KeyUserData); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	g.logger.Info("auth_logout")
	return nil
}
