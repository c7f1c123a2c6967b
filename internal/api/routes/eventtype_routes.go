package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/handlers"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
)

// EventTypeRoutes handles the setup of event type routes
type EventTypeRoutes struct {
	handler   *handlers.EventTypeHandler
	jwtSecret string
}

// NewEventTypeRoutes creates a new EventTypeRoutes instance
func NewEventTypeRoutes(handler *handlers.EventTypeHandler, jwtSecret string) *EventTypeRoutes {
	return &EventTypeRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all event type routes
func (r *EventTypeRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	eventTypes := router.Group("/api/event-types")
	eventTypes.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	eventTypes.GET("/:id", cache.CacheResponse(), r.handler.GetEventType)

	// POST: the copy action emits a toast event, so it is not cacheable.
	eventTypes.POST("/:id/copy-link", r.handler.CopyLink)

	// Every mutation drops the cached list and dashboard views.
	eventTypes.POST("", cache.CacheInvalidate("event-types:*", "dashboard:*"), r.handler.CreateEventType)
	eventTypes.PUT("/:id", cache.CacheInvalidate("event-types:*", "dashboard:*"), r.handler.UpdateEventType)
	eventTypes.PATCH("/:id/active", cache.CacheInvalidate("event-types:*", "dashboard:*"), r.handler.SetActive)
	eventTypes.DELETE("/:id", cache.CacheInvalidate("event-types:*", "dashboard:*"), r.handler.DeleteEventType)
}
