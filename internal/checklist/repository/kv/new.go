package kv

import (
	"fmt"

	"trackfit-companion/internal/checklist"
	"trackfit-companion/internal/checklist/repository"
	"trackfit-companion/pkg/kvstore"
	"trackfit-companion/pkg/log"
)

type implRepository struct {
	store kvstore.Storage
	l     log.Logger
}

// New creates a key-value backed Repository for the checklist domain.
func New(store kvstore.Storage, l log.Logger) repository.Repository {
	if store == nil {
		panic("checklist/repository/kv: store is required")
	}
	return &implRepository{store: store, l: l}
}

// StorageKey returns the key a user's collection is stored under.
func StorageKey(userKey string) string {
	return checklist.StoragePrefix + userKey
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("checklist/repository/kv.%s", method)
}
