package checklist

import "context"

// UserKeyProvider resolves the signed-in user's storage partition.
// found=false selects AnonymousKey.
type UserKeyProvider interface {
	CurrentUserKey(ctx context.Context) (key string, found bool)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Load returns the stored collection for userKey, or an empty one when
	// it is absent or unreadable.
	Load(ctx context.Context, userKey string) []Item

	// Save overwrites the stored collection for userKey.
	Save(ctx context.Context, userKey string, items []Item) error

	// Item mutations, scoped to the current user.
	AddItem(ctx context.Context, input AddItemInput) (AddItemOutput, error)
	TogglePhase(ctx context.Context, input TogglePhaseInput) (TogglePhaseOutput, error)
	RemoveItem(ctx context.Context, itemID string) (RemoveItemOutput, error)

	// RenderModel recomputes the current user's view from storage.
	RenderModel(ctx context.Context) RenderModel
}
