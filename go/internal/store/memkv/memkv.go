// Package memkv is an in-process store.Backend
package memkv

import (
	"context"
	"sync"

	"github.com/mcdev12/liga/go/internal/store"
)

// Backend keeps values in a map. Values are copied on the way in and out.
type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty Backend
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), value...)
	return nil
}
