package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/handlers"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
)

// UserRoutes handles the setup of profile settings routes
type UserRoutes struct {
	handler   *handlers.UserHandler
	jwtSecret string
}

// NewUserRoutes creates a new UserRoutes instance
func NewUserRoutes(handler *handlers.UserHandler, jwtSecret string) *UserRoutes {
	return &UserRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all settings routes
func (r *UserRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	settings := router.Group("/api/settings")
	settings.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	settings.GET("", cache.CacheResponse(), r.handler.GetSettings)
	settings.POST("", cache.CacheInvalidate("settings:*", "dashboard:*"), r.handler.UpdateSettings)
}
