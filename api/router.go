// Package api wires HTTP controllers into a gin engine.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Addr is the configured listen address.
func (r *Router) Addr() string { return r.addr }

// Engine builds the gin engine with every route registered.
//
// Routes:
//   - GET  /healthz
//   - <baseURL>/v1/... from each controller
func (r *Router) Engine() *gin.Engine {
	router := gin.Default()
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(publicRoutes)
		}
	}

	return router
}

// Server wraps the engine in an http.Server on the configured address.
// The caller owns ListenAndServe and Shutdown.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:              r.addr,
		Handler:           r.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
