package usecase

import (
	"context"
	"fmt"
	"strings"

	"trackfit-companion/internal/checklist"
)

// Load returns the collection stored for userKey. Read and decode failures
// are logged and treated as an empty collection.
func (uc *implUseCase) Load(ctx context.Context, userKey string) []checklist.Item {
	items, _, err := uc.repo.LoadItems(ctx, userKey)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Load LoadItems(%s): %v", userKey, err)
		return []checklist.Item{}
	}
	if items == nil {
		return []checklist.Item{}
	}
	return items
}

// Save overwrites the collection stored for userKey.
func (uc *implUseCase) Save(ctx context.Context, userKey string, items []checklist.Item) error {
	if err := uc.repo.SaveItems(ctx, userKey, items); err != nil {
		uc.l.Errorf(ctx, "uc.Save SaveItems(%s): %v", userKey, err)
		return fmt.Errorf("%w: %v", checklist.ErrPersistFailed, err)
	}
	return nil
}

// RenderModel recomputes the current user's view from storage.
func (uc *implUseCase) RenderModel(ctx context.Context) checklist.RenderModel {
	userKey := uc.userKey(ctx)
	return checklist.BuildRenderModel(userKey, uc.Load(ctx, userKey))
}

// userKey resolves the storage partition for the current user.
func (uc *implUseCase) userKey(ctx context.Context) string {
	if uc.users == nil {
		return checklist.AnonymousKey
	}
	key, ok := uc.users.CurrentUserKey(ctx)
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return checklist.AnonymousKey
	}
	return key
}
