package usecase

import (
	"context"
	"strings"

	"trackfit-companion/internal/routine"
	"trackfit-companion/pkg/trackfit"
)

// List fetches the signed-in user's routine tasks.
func (uc *implUseCase) List(ctx context.Context) (routine.ListOutput, error) {
	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return routine.ListOutput{}, err
	}

	raw, err := uc.api.ListRoutines(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRoutines: %v", err)
		return routine.ListOutput{}, err
	}

	tasks := make([]routine.Task, len(raw))
	for i, r := range raw {
		tasks[i] = toTask(r)
	}

	return routine.ListOutput{
		Tasks:      tasks,
		CountLabel: routine.CountLabel(len(tasks)),
	}, nil
}

// Create adds a routine task. Blank optional fields are sent as null.
func (uc *implUseCase) Create(ctx context.Context, input routine.CreateInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return routine.ErrEmptyTitle
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return err
	}

	err = uc.api.CreateRoutine(ctx, token, trackfit.CreateRoutineRequest{
		Title:       title,
		Description: optional(input.Description),
		TargetDate:  optional(input.TargetDate),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRoutine: %v", err)
		return err
	}
	return nil
}

// SetCompleted marks a routine task done or not done.
func (uc *implUseCase) SetCompleted(ctx context.Context, input routine.SetCompletedInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return routine.ErrEmptyID
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := uc.api.SetRoutineCompleted(ctx, token, input.ID, input.Value); err != nil {
		uc.l.Errorf(ctx, "uc.SetCompleted SetRoutineCompleted(%s): %v", input.ID, err)
		return err
	}
	return nil
}

// Delete removes a routine task.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return routine.ErrEmptyID
	}

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := uc.api.DeleteRoutine(ctx, token, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteRoutine(%s): %v", id, err)
		return err
	}
	return nil
}
