package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-tool-router/internal/handlers"
	"multilingual-tool-router/internal/routing"
	"multilingual-tool-router/pkg/log"
)

// Handler is the public interface for the routing HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	Dispatch(c *gin.Context)
	Evaluate(c *gin.Context)
	ListDecisions(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         routing.UseCase
	dispatcher *handlers.Dispatcher
}

// New creates a new HTTP handler for the routing domain.
func New(l log.Logger, uc routing.UseCase, dispatcher *handlers.Dispatcher) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		dispatcher: dispatcher,
	}
}
