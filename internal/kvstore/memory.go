package kvstore

import (
	"context"
	"sync"
)

// memory keeps values for the lifetime of the process.
type memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() Store {
	return &memory{data: make(map[string]string)}
}

func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *memory) Close() error { return nil }
