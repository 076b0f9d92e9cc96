package checklist

const (
	LabelNotStarted = "Not started"
	LabelInProgress = "In progress"
	LabelComplete   = "Complete"
)

// ComputeStatus derives an item's status from its phases.
func ComputeStatus(phases Phases) Status {
	done := 0
	for _, p := range phases {
		if p {
			done++
		}
	}

	switch done {
	case 0:
		return Status{Label: LabelNotStarted, Category: StatusNotStarted}
	case len(phases):
		return Status{Label: LabelComplete, Category: StatusComplete}
	default:
		return Status{Label: LabelInProgress, Category: StatusInProgress}
	}
}

// Summarize counts complete items.
func Summarize(items []Item) Summary {
	s := Summary{TotalCount: len(items)}
	for _, item := range items {
		if ComputeStatus(item.Phases).Category == StatusComplete {
			s.CompleteCount++
		}
	}
	return s
}

// BuildRenderModel derives the view of items for userKey.
func BuildRenderModel(userKey string, items []Item) RenderModel {
	views := make([]ItemView, len(items))
	for i, item := range items {
		st := ComputeStatus(item.Phases)
		views[i] = ItemView{
			ID:             item.ID,
			Title:          item.Title,
			Phases:         item.Phases,
			StatusLabel:    st.Label,
			StatusCategory: st.Category,
		}
	}
	return RenderModel{
		UserKey: userKey,
		Items:   views,
		Summary: Summarize(items),
	}
}

// ValidPhase reports whether phase indexes into Phases.
func ValidPhase(phase int) bool {
	return phase >= 0 && phase < PhaseCount
}
