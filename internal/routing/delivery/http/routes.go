package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-tool-router/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth and RateLimit middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	route := rg.Group("/route")
	{
		route.POST("", mw.Auth(), mw.RateLimit(), h.Route)
		route.POST("/dispatch", mw.Auth(), mw.RateLimit(), h.Dispatch)
	}

	rg.POST("/evaluate", mw.Auth(), mw.RateLimit(), h.Evaluate)
	rg.GET("/decisions", mw.Auth(), mw.RateLimit(), h.ListDecisions)
}
