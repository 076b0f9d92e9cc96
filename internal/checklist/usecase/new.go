package usecase

import (
	"sync"

	"github.com/google/uuid"

	"trackfit-companion/internal/checklist"
	"trackfit-companion/internal/checklist/repository"
	"trackfit-companion/pkg/log"
)

// implUseCase is the private implementation of checklist.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users checklist.UserKeyProvider
	l     log.Logger
	newID func() string

	// mu makes each read-modify-write of a collection atomic.
	mu sync.Mutex
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithIDGenerator overrides how new item ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(uc *implUseCase) {
		if fn != nil {
			uc.newID = fn
		}
	}
}

// New creates a new checklist UseCase implementation.
// A nil users provider always resolves to the anonymous partition.
func New(repo repository.Repository, users checklist.UserKeyProvider, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo:  repo,
		users: users,
		l:     l,
		newID: newItemID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// newItemID returns a time-ordered UUIDv7, or a random UUID if the clock source fails.
func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

var _ checklist.UseCase = (*implUseCase)(nil)
