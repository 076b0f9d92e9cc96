package http

import (
	"trackfit-companion/internal/session"
	"trackfit-companion/pkg/log"
)

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
