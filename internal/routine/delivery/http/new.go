package http

import (
	"trackfit-companion/internal/routine"
	"trackfit-companion/pkg/log"
)

type handler struct {
	l  log.Logger
	uc routine.UseCase
}

// New creates a new HTTP handler for the routine domain.
func New(l log.Logger, uc routine.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
