package usecase

import (
	"context"

	"trackfit-companion/internal/stats"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

// API is the subset of the TrackFit client the stats domain calls.
type API interface {
	Overview(ctx context.Context, token string) (*trackfit.OverviewStats, error)
}

// TokenSource yields the signed-in user's auth token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type implUseCase struct {
	api    API
	tokens TokenSource
	l      log.Logger
}

// New creates a new stats UseCase implementation.
func New(api API, tokens TokenSource, l log.Logger) *implUseCase {
	return &implUseCase{api: api, tokens: tokens, l: l}
}

// Overview fetches and formats the signed-in user's overview stats.
func (uc *implUseCase) Overview(ctx context.Context) (stats.Overview, error) {
	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return stats.Overview{}, err
	}

	raw, err := uc.api.Overview(ctx, token)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Overview: %v", err)
		return stats.Overview{}, err
	}
	return stats.Format(*raw), nil
}

var _ stats.UseCase = (*implUseCase)(nil)
