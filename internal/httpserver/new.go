package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"multilingual-tool-router/internal/middleware"
	routingHTTP "multilingual-tool-router/internal/routing/delivery/http"
	"multilingual-tool-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Routing domain
	routingHandler routingHTTP.Handler
	mw             middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RoutingHandler routingHTTP.Handler
	Middleware     middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		routingHandler: cfg.RoutingHandler,
		mw:             cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
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
	if srv.routingHandler == nil {
		return errors.New("routing handler is required")
	}
	return nil
}

// Run maps all handlers and blocks serving HTTP.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
