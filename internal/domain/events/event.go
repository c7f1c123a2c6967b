package events

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard event types
const (
	EventTypeListUpdate    = "event_type_update"
	EventTypeProfileUpdate = "profile_update"
)

// DashboardEvent represents a dashboard-related event published on the
// Redis channel so connected dashboards can refresh or show toasts.
type DashboardEvent struct {
	EventType string      `json:"event_type"`
	UserID    uuid.UUID   `json:"user_id"`
	EntityID  uuid.UUID   `json:"entity_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Details   interface{} `json:"details,omitempty"`
}

// DashboardEventToast carries transient user feedback (severity + message)
// over the same channel.
const DashboardEventToast = "toast"
