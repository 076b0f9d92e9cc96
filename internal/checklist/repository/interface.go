package repository

import (
	"context"

	"trackfit-companion/internal/checklist"
)

// Repository is the composed interface for the checklist data store.
type Repository interface {
	ItemRepository
}

// ItemRepository reads and writes a user's whole collection.
// There are no partial writes: SaveItems always replaces the stored value.
type ItemRepository interface {
	// LoadItems returns found=false for a collection that was never saved.
	LoadItems(ctx context.Context, userKey string) (items []checklist.Item, found bool, err error)
	SaveItems(ctx context.Context, userKey string, items []checklist.Item) error
}
