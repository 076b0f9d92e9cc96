package routine

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Create(ctx context.Context, input CreateInput) error
	SetCompleted(ctx context.Context, input SetCompletedInput) error
	Delete(ctx context.Context, id string) error
}
