package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/handlers"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
)

// DashboardRoutes handles the setup of dashboard routes
type DashboardRoutes struct {
	handler   *handlers.DashboardHandler
	jwtSecret string
}

// NewDashboardRoutes creates a new DashboardRoutes instance
func NewDashboardRoutes(handler *handlers.DashboardHandler, jwtSecret string) *DashboardRoutes {
	return &DashboardRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all dashboard routes
func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	dashboard := router.Group("/api/dashboard")
	dashboard.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	dashboard.GET("/event-types", cache.CacheResponse(), r.handler.GetEventTypeList)
}
