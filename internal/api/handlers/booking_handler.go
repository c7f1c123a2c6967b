package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/dto"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/user"
)

// BookingHandler serves the public booking page lookups. No session is
// involved: booking links are shared with people outside the account.
type BookingHandler struct {
	eventTypes eventtype.Service
	users      user.Service
}

func NewBookingHandler(eventTypes eventtype.Service, users user.Service) *BookingHandler {
	return &BookingHandler{eventTypes: eventTypes, users: users}
}

// GetBookingPage resolves {username}/{slug} into the booking view. An
// unknown username or slug, or a deactivated event type, is a 404.
func (h *BookingHandler) GetBookingPage(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	account, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if err == user.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	record, err := h.eventTypes.FindBySlug(c.Request.Context(), account.ID, slug)
	if err != nil {
		if err == eventtype.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "event type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.BookingPageResponse{
		User: dto.PublicProfileResponse{
			Username:        account.Username,
			FullName:        account.FullName,
			ProfileImageURL: account.ProfileImageURL,
		},
		EventType: dto.EventTypeToResponse(record),
	}})
}
