// Package kvstore defines the string key-value storage capability the
// companion persists local state through, plus its errors.
package kvstore

import (
	"context"
	"errors"
)

var (
	ErrFailedToGet    = errors.New("failed to get value")
	ErrFailedToSet    = errors.New("failed to set value")
	ErrFailedToDelete = errors.New("failed to delete value")
	ErrClosed         = errors.New("storage is closed")
)

// Storage is a durable string key-value store.
// Get reports found=false with a nil error for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
