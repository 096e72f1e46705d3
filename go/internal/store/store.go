// Package store keeps a single value per key in memory and writes it through
// to a durable Backend on every change.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned by a Backend when nothing is stored under a key
var ErrNotFound = errors.New("store: key not found")

// Backend is the durable key-value storage behind a Store
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Option configures a Store
type Option func(*options)

type options struct {
	metrics MetricsCollector
}

// WithMetrics records reads, writes and fallbacks on m
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// Store holds the current value for one key. The value is read from the
// backend lazily on first access; every Set or Update writes it back once.
//
// Storage failures never reach the caller: a failed or undecodable read falls
// back to the fallback value and a failed write leaves the in-memory value as
// the only copy. Both are logged and counted.
type Store[T any] struct {
	backend  Backend
	key      string
	fallback T
	metrics  MetricsCollector

	mu     sync.Mutex
	loaded bool
	value  T
}

// New creates a Store for key. fallback becomes the current value when the
// backend has nothing usable for key.
func New[T any](backend Backend, key string, fallback T, opts ...Option) *Store[T] {
	o := options{metrics: NoOpMetricsCollector{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		backend:  backend,
		key:      key,
		fallback: fallback,
		metrics:  o.metrics,
	}
}

// Key returns the storage key of s
func (s *Store[T]) Key() string {
	return s.key
}

// Get returns the current value, loading it on first use. Callers must treat
// the result as read-only and go through Set or Update to change it.
func (s *Store[T]) Get(ctx context.Context) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	return s.value
}

// Set replaces the current value and persists it
func (s *Store[T]) Set(ctx context.Context, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.value = value
	s.persistLocked(ctx)
}

// Update applies fn to the current value, stores the result and persists it
// with a single write. fn must not modify its argument in place.
func (s *Store[T]) Update(ctx context.Context, fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	s.value = fn(s.value)
	s.persistLocked(ctx)
	return s.value
}

// Reset forgets the in-memory value so the next Get reads the backend again
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.loaded = false
	s.value = zero
}

func (s *Store[T]) loadLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.value = s.fallback

	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.metrics.RecordRead(s.key, true)
			s.metrics.RecordFallback(s.key, FallbackMissing)
			log.Debug().Str("key", s.key).Msg("no stored value, using fallback")
			return
		}
		s.metrics.RecordRead(s.key, false)
		s.metrics.RecordFallback(s.key, FallbackReadError)
		log.Warn().Err(err).Str("key", s.key).Msg("failed to read stored value, using fallback")
		return
	}
	s.metrics.RecordRead(s.key, true)

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		s.metrics.RecordFallback(s.key, FallbackDecodeError)
		log.Warn().Err(err).Str("key", s.key).Msg("failed to decode stored value, using fallback")
		return
	}
	s.value = decoded
}

func (s *Store[T]) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.value)
	if err != nil {
		s.metrics.RecordWrite(s.key, false)
		log.Error().Err(err).Str("key", s.key).Msg("failed to encode value")
		return
	}

	if err := s.backend.Put(ctx, s.key, data); err != nil {
		s.metrics.RecordWrite(s.key, false)
		log.Warn().Err(err).Str("key", s.key).Msg("failed to persist value, keeping it in memory")
		return
	}
	s.metrics.RecordWrite(s.key, true)
}
