package checklist

import "fmt"

const (
	// PhaseCount is the fixed number of completion phases per item.
	PhaseCount = 3

	// StoragePrefix prefixes the per-user storage key.
	StoragePrefix = "trackfit:checklist:"

	// AnonymousKey partitions storage when nobody is signed in.
	AnonymousKey = "anonymous"
)

// --- Domain Model ---

// Phases is the per-item completion vector, indexed 0..PhaseCount-1.
type Phases [PhaseCount]bool

// Item is a user-created checklist task.
type Item struct {
	ID     string
	Title  string
	Phases Phases
}

// StatusCategory classifies an item's completion.
type StatusCategory string

const (
	StatusNotStarted StatusCategory = "not_started"
	StatusInProgress StatusCategory = "in_progress"
	StatusComplete   StatusCategory = "complete"
)

// Status is the derived label and category of an item.
type Status struct {
	Label    string
	Category StatusCategory
}

// Summary aggregates a collection.
type Summary struct {
	CompleteCount int
	TotalCount    int
}

// Text renders the summary line shown under the checklist.
func (s Summary) Text() string {
	return fmt.Sprintf("%d/%d tasks complete", s.CompleteCount, s.TotalCount)
}

// ItemView is an Item with its derived status.
type ItemView struct {
	ID             string
	Title          string
	Phases         Phases
	StatusLabel    string
	StatusCategory StatusCategory
}

// RenderModel is the full view of a user's checklist, recomputed after every mutation.
type RenderModel struct {
	UserKey string
	Items   []ItemView
	Summary Summary
}

// --- UseCase Inputs ---

type AddItemInput struct {
	Title string
}

type TogglePhaseInput struct {
	ItemID string
	Phase  int
	Value  bool
}

// --- UseCase Outputs ---

type AddItemOutput struct {
	Item  Item
	Added bool // false when the title was empty after trimming
	Model RenderModel
}

type TogglePhaseOutput struct {
	Toggled bool // false for an unknown item or out-of-range phase
	Model   RenderModel
}

type RemoveItemOutput struct {
	Removed bool
	Model   RenderModel
}
