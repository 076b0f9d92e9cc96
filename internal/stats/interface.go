package stats

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Overview(ctx context.Context) (Overview, error)
}
