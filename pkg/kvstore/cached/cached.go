package cached

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"trackfit-companion/pkg/kvstore"
)

// Store is a read-through, write-through LRU cache in front of a Storage.
// Only present keys are cached; misses always reach the backing store.
type Store struct {
	next  kvstore.Storage
	cache *expirable.LRU[string, string]
}

// New wraps next with an expirable LRU of the given size and TTL.
func New(next kvstore.Storage, size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = 128
	}
	return &Store{
		next:  next,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Get serves key from cache, falling back to the backing store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, true, nil
	}

	v, found, err := s.next.Get(ctx, key)
	if err != nil || !found {
		return v, found, err
	}
	s.cache.Add(key, v)
	return v, true, nil
}

// Set writes through to the backing store, then caches value.
// A failed write evicts key so the cache never holds unpersisted data.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Remove(key)
		return err
	}
	s.cache.Add(key, value)
	return nil
}

// Delete removes key from the backing store and the cache.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.cache.Remove(key)
	return s.next.Delete(ctx, key)
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	return s.cache.Len()
}

var _ kvstore.Storage = (*Store)(nil)
