package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-manager/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
}

// setupMeetingRoutes configures meeting record routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	records := g.Group("/meeting-records")

	records.POST("/upload", rt.meetingHandler.Upload)
	records.GET("", rt.meetingHandler.List)
	records.GET("/:id", rt.meetingHandler.Get)
	records.GET("/:id/status", rt.meetingHandler.Status)
	records.POST("/:id/reprocess", rt.meetingHandler.Reprocess)
	records.GET("/:id/download", rt.meetingHandler.Download)
	records.DELETE("/:id", rt.meetingHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
