// Package kvstore is the string key/value persistence used for client state
// such as the feedback flag, the last suggested move and the login record.
package kvstore

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultFilePath is the JSON document used when no store URL is configured.
func DefaultFilePath() (string, error) {
	return xdg.DataFile(filepath.Join("chess-suggest", "storage.json"))
}

// Open selects a backend by URL scheme: memory://, file:///path, redis:// or
// rediss://. An empty URL opens the default file.
func Open(ctx context.Context, raw string) (Store, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		path, err := DefaultFilePath()
		if err != nil {
			return nil, fmt.Errorf("resolve default store path: %w", err)
		}
		return NewFile(path)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	switch u.Scheme {
	case "memory":
		return NewMemory(), nil
	case "file":
		path := u.Path
		if u.Host != "" && u.Host != "localhost" {
			path = filepath.Join(u.Host, u.Path)
		}
		if path == "" {
			return nil, fmt.Errorf("file store url needs a path: %s", raw)
		}
		return NewFile(path)
	case "redis", "rediss":
		// go-redis rejects unknown query options, so prefix is stripped here.
		q := u.Query()
		prefix := q.Get("prefix")
		q.Del("prefix")
		u.RawQuery = q.Encode()
		return DialRedis(ctx, u.String(), prefix)
	default:
		return nil, fmt.Errorf("unsupported store scheme: %s", u.Scheme)
	}
}
