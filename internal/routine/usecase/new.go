package usecase

import (
	"context"

	"trackfit-companion/internal/routine"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

// API is the subset of the TrackFit client the routine domain calls.
type API interface {
	ListRoutines(ctx context.Context, token string) ([]trackfit.RoutineTask, error)
	CreateRoutine(ctx context.Context, token string, req trackfit.CreateRoutineRequest) error
	SetRoutineCompleted(ctx context.Context, token, id string, value bool) error
	DeleteRoutine(ctx context.Context, token, id string) error
}

// TokenSource yields the signed-in user's auth token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// implUseCase is the private implementation of routine.UseCase.
type implUseCase struct {
	api    API
	tokens TokenSource
	l      log.Logger
}

// New creates a new routine UseCase implementation.
func New(api API, tokens TokenSource, l log.Logger) *implUseCase {
	return &implUseCase{
		api:    api,
		tokens: tokens,
		l:      l,
	}
}

var _ routine.UseCase = (*implUseCase)(nil)
