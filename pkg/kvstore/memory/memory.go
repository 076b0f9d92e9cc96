package memory

import (
	"context"
	"fmt"
	"sync"

	"trackfit-companion/pkg/kvstore"
)

// Store is an in-memory kvstore.Storage.
// The Err fields inject failures for tests.
type Store struct {
	mu     sync.RWMutex
	values map[string]string

	GetErr    error
	SetErr    error
	DeleteErr error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.GetErr != nil {
		return "", false, fmt.Errorf("%w: %v", kvstore.ErrFailedToGet, s.GetErr)
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SetErr != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrFailedToSet, s.SetErr)
	}
	s.values[key] = value
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrFailedToDelete, s.DeleteErr)
	}
	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

var _ kvstore.Storage = (*Store)(nil)
