package usecase

import (
	"context"

	"trackfit-companion/internal/session"
	"trackfit-companion/pkg/kvstore"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

// Authenticator starts backend sessions. *trackfit.Client satisfies it.
type Authenticator interface {
	StartSession(ctx context.Context, req trackfit.StartSessionRequest) (*trackfit.StartSessionResponse, error)
}

// implUseCase is the private implementation of session.UseCase.
type implUseCase struct {
	store kvstore.Storage
	auth  Authenticator
	l     log.Logger
}

// New creates a new session UseCase implementation.
func New(store kvstore.Storage, auth Authenticator, l log.Logger) *implUseCase {
	return &implUseCase{
		store: store,
		auth:  auth,
		l:     l,
	}
}

var _ session.UseCase = (*implUseCase)(nil)
