package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/brandonkimmmm/backend-coding-test/internal/handler"
	"github.com/brandonkimmmm/backend-coding-test/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler *handler.RideHandler
	Logger      *slog.Logger
	NewRelicApp *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware. RequestID runs first so every later log line
	// carries the correlation id.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(deps.Logger))
	router.Use(middleware.Secure())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})

	// Ride routes.
	rides := router.Group("/rides")
	{
		rides.POST("", deps.RideHandler.CreateRide)
		rides.GET("", deps.RideHandler.GetRides)
		rides.GET("/:id", deps.RideHandler.GetRide)
	}

	// API documentation.
	handler.RegisterDocs(router)

	// Unknown paths report a request error rather than a bare 404.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, handler.ErrorResponse{
			ErrorCode: handler.CodeRequestError,
			Message:   fmt.Sprintf("Path %s does not exist", c.Request.URL.Path),
		})
	})

	return router
}
