package http

import (
	"trackfit-companion/internal/checklist"
	"trackfit-companion/pkg/log"
)

type handler struct {
	l  log.Logger
	uc checklist.UseCase
}

// New creates a new HTTP handler for the checklist domain.
func New(l log.Logger, uc checklist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
