package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/handlers"
)

// BookingRoutes handles the setup of the public booking routes
type BookingRoutes struct {
	handler *handlers.BookingHandler
}

// NewBookingRoutes creates a new BookingRoutes instance
func NewBookingRoutes(handler *handlers.BookingHandler) *BookingRoutes {
	return &BookingRoutes{handler: handler}
}

// RegisterRoutes registers the public booking routes. No auth middleware:
// these serve whoever holds the shared link.
func (r *BookingRoutes) RegisterRoutes(router *gin.Engine) {
	booking := router.Group("/api/booking")

	booking.GET("/:username/:slug", r.handler.GetBookingPage)
}
