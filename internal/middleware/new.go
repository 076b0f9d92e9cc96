package middleware

import (
	"trackfit-companion/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	RequestsPerMin int
	MaxClients     int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients),
	}
}
