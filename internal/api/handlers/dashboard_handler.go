package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/dto"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
	"github.com/Harshitduggal1/scheduling-software/internal/dashboard"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/user"
)

type DashboardHandler struct {
	eventTypes eventtype.Service
	users      user.Service
	baseURL    string
}

func NewDashboardHandler(eventTypes eventtype.Service, users user.Service, baseURL string) *DashboardHandler {
	return &DashboardHandler{eventTypes: eventTypes, users: users, baseURL: baseURL}
}

// GetEventTypeList renders the dashboard's event type list: items in
// newest-first order with their per-item actions, or the empty state.
func (h *DashboardHandler) GetEventTypeList(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	// A missing account means there is nothing to render at all.
	account, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		if err == user.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := h.eventTypes.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	durations := make([]int, 0, 4)
	for _, d := range eventtype.Durations() {
		durations = append(durations, int(d))
	}
	platforms := make([]string, 0, 3)
	for _, p := range eventtype.Platforms() {
		platforms = append(platforms, string(p))
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ListViewResponse{
		View: dashboard.BuildListView(h.baseURL, account.Username, records),
		FormOptions: dto.FormOptions{
			Durations: durations,
			Platforms: platforms,
		},
	}})
}
