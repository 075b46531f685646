package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ai-therapist/internal/middleware"
	sessionHTTP "ai-therapist/internal/session/delivery/http"
	"ai-therapist/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	mw middleware.Middleware

	// Session domain
	sessionHandler sessionHTTP.Handler

	// ready reports whether dependencies are able to serve traffic.
	ready func() bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware     middleware.Middleware
	SessionHandler sessionHTTP.Handler

	// Ready is optional. When nil the server is ready as soon as it listens.
	Ready func() bool
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		sessionHandler:  cfg.SessionHandler,
		ready:           cfg.Ready,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
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
	if srv.sessionHandler == nil {
		return errors.New("session handler is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
