package routine

// --- Domain Model ---

// Task is a backend-stored routine task.
type Task struct {
	ID          string
	Title       string
	Description string
	TargetDate  string
	Completed   bool
}

// MetaLabel is the secondary line shown under the task title.
func (t Task) MetaLabel() string {
	if t.TargetDate == "" {
		return "No target date"
	}
	return "Target: " + t.TargetDate
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	TargetDate  string
}

type SetCompletedInput struct {
	ID    string
	Value bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks      []Task
	CountLabel string
}
