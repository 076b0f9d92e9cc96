package usecase

import (
	"strings"

	"trackfit-companion/internal/routine"
	"trackfit-companion/pkg/trackfit"
)

// optional trims s and returns nil when nothing is left.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toTask(r trackfit.RoutineTask) routine.Task {
	return routine.Task{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: deref(r.Description),
		TargetDate:  deref(r.TargetDate),
		Completed:   r.Completed,
	}
}
