package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"trackfit-companion/internal/middleware"
	"trackfit-companion/pkg/kvstore"
	"trackfit-companion/pkg/log"
	"trackfit-companion/pkg/trackfit"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	rateLimit      middleware.Config
	startedAt      time.Time

	// Domain dependencies
	storage kvstore.Storage
	backend *trackfit.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	RateLimit      middleware.Config

	// Storage persists the checklist and the signed-in session.
	Storage kvstore.Storage
	// Backend is the TrackFit API client used for sessions, routines and stats.
	Backend *trackfit.Client
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		rateLimit:      cfg.RateLimit,
		startedAt:      time.Now(),
		storage:        cfg.Storage,
		backend:        cfg.Backend,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	if srv.backend == nil {
		return errors.New("backend client is required")
	}
	return nil
}
