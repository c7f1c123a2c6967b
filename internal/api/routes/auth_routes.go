package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/handlers"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
)

// AuthRoutes handles the setup of session maintenance routes
type AuthRoutes struct {
	handler   *handlers.AuthHandler
	jwtSecret string
}

// NewAuthRoutes creates a new AuthRoutes instance
func NewAuthRoutes(handler *handlers.AuthHandler, jwtSecret string) *AuthRoutes {
	return &AuthRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all session maintenance routes
func (r *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	authGroup := router.Group("/api/auth")
	authGroup.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	authGroup.POST("/refresh", r.handler.Refresh)
}
