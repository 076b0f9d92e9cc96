package usecase

import (
	"context"
	"strings"

	"trackfit-companion/internal/checklist"
)

// AddItem appends a new item with all phases unset.
// An empty title after trimming is a no-op.
func (uc *implUseCase) AddItem(ctx context.Context, input checklist.AddItemInput) (checklist.AddItemOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	userKey := uc.userKey(ctx)
	items := uc.Load(ctx, userKey)

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return checklist.AddItemOutput{Model: checklist.BuildRenderModel(userKey, items)}, nil
	}

	item := checklist.Item{
		ID:    uc.uniqueID(items),
		Title: title,
	}
	next := append(items, item)

	if err := uc.Save(ctx, userKey, next); err != nil {
		return checklist.AddItemOutput{Model: checklist.BuildRenderModel(userKey, items)}, err
	}

	return checklist.AddItemOutput{
		Item:  item,
		Added: true,
		Model: checklist.BuildRenderModel(userKey, next),
	}, nil
}

// TogglePhase sets one phase of an item. Unknown ids and out-of-range phases are no-ops.
func (uc *implUseCase) TogglePhase(ctx context.Context, input checklist.TogglePhaseInput) (checklist.TogglePhaseOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	userKey := uc.userKey(ctx)
	items := uc.Load(ctx, userKey)

	idx := indexOf(items, input.ItemID)
	if idx < 0 || !checklist.ValidPhase(input.Phase) {
		return checklist.TogglePhaseOutput{Model: checklist.BuildRenderModel(userKey, items)}, nil
	}

	next := make([]checklist.Item, len(items))
	copy(next, items)
	next[idx].Phases[input.Phase] = input.Value

	if err := uc.Save(ctx, userKey, next); err != nil {
		return checklist.TogglePhaseOutput{Model: checklist.BuildRenderModel(userKey, items)}, err
	}

	return checklist.TogglePhaseOutput{
		Toggled: true,
		Model:   checklist.BuildRenderModel(userKey, next),
	}, nil
}

// RemoveItem drops the item with itemID. Removing an unknown id still
// rewrites the unchanged collection and reports Removed=false.
func (uc *implUseCase) RemoveItem(ctx context.Context, itemID string) (checklist.RemoveItemOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	userKey := uc.userKey(ctx)
	items := uc.Load(ctx, userKey)

	next := make([]checklist.Item, 0, len(items))
	for _, item := range items {
		if item.ID != itemID {
			next = append(next, item)
		}
	}

	if err := uc.Save(ctx, userKey, next); err != nil {
		return checklist.RemoveItemOutput{Model: checklist.BuildRenderModel(userKey, items)}, err
	}

	return checklist.RemoveItemOutput{
		Removed: len(next) != len(items),
		Model:   checklist.BuildRenderModel(userKey, next),
	}, nil
}
