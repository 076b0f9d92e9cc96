package usecase

import "trackfit-companion/internal/checklist"

// indexOf returns the position of the item with id, or -1.
func indexOf(items []checklist.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// uniqueID generates an id not already used in items.
func (uc *implUseCase) uniqueID(items []checklist.Item) string {
	for {
		id := uc.newID()
		if id != "" && indexOf(items, id) < 0 {
			return id
		}
	}
}
