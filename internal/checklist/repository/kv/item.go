package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"trackfit-companion/internal/checklist"
	repo "trackfit-companion/internal/checklist/repository"
)

// storedItem is the persisted layout: {id, title, phases:[bool,bool,bool]}.
type storedItem struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Phases checklist.Phases `json:"phases"`
}

// LoadItems reads and decodes the collection stored for userKey.
// Shorter phase arrays decode with the missing phases false; extra entries are dropped.
func (r *implRepository) LoadItems(ctx context.Context, userKey string) ([]checklist.Item, bool, error) {
	raw, found, err := r.store.Get(ctx, StorageKey(userKey))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadItems"), err)
		return nil, false, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	if !found || raw == "" {
		return nil, false, nil
	}

	var stored []storedItem
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, true, fmt.Errorf("%w: %v", repo.ErrFailedToDecode, err)
	}

	items := make([]checklist.Item, len(stored))
	for i, s := range stored {
		items[i] = checklist.Item{ID: s.ID, Title: s.Title, Phases: s.Phases}
	}
	return items, true, nil
}

// SaveItems overwrites the collection stored for userKey.
func (r *implRepository) SaveItems(ctx context.Context, userKey string, items []checklist.Item) error {
	stored := make([]storedItem, len(items))
	for i, item := range items {
		stored[i] = storedItem{ID: item.ID, Title: item.Title, Phases: item.Phases}
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrFailedToEncode, err)
	}

	if err := r.store.Set(ctx, StorageKey(userKey), string(raw)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveItems"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return nil
}
