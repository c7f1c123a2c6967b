package eventtype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Duration is the closed set of bookable meeting lengths in minutes.
type Duration int

const (
	Duration15 Duration = 15
	Duration30 Duration = 30
	Duration45 Duration = 45
	Duration60 Duration = 60
)

// VideoCallSoftware is the closed set of supported meeting platforms.
type VideoCallSoftware string

const (
	PlatformZoom  VideoCallSoftware = "Zoom Meeting"
	PlatformMeet  VideoCallSoftware = "Google Meet"
	PlatformTeams VideoCallSoftware = "Microsoft Teams"
)

// EventType represents one bookable meeting template. The slug is unique
// within a user's namespace; uniqueness is enforced by the composite index.
type EventType struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index:idx_event_type_user;uniqueIndex:idx_event_type_user_url"`
	Title       string            `json:"title" gorm:"type:varchar(150);not null"`
	URL         string            `json:"url" gorm:"type:varchar(150);not null;uniqueIndex:idx_event_type_user_url"`
	Description string            `json:"description" gorm:"type:text"`
	Duration    Duration          `json:"duration" gorm:"not null;default:30"`
	VideoCall   VideoCallSoftware `json:"videoCallSoftware" gorm:"column:video_call_software;type:varchar(50);not null;default:'Google Meet'"`
	Active      bool              `json:"active" gorm:"not null;default:true"`
	CreatedAt   time.Time         `json:"createdAt" gorm:"not null;default:current_timestamp;index:idx_event_type_created"`
	UpdatedAt   time.Time         `json:"updatedAt" gorm:"not null;default:current_timestamp"`
}

// TableName specifies the table name
func (EventType) TableName() string { return "event_types" }

// BeforeCreate hook for UUID generation
func (e *EventType) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsValid reports whether the duration is one of the enumerated values.
func (d Duration) IsValid() bool {
	switch d {
	case Duration15, Duration30, Duration45, Duration60:
		return true
	}
	return false
}

// IsValid reports whether the platform is one of the enumerated values.
func (v VideoCallSoftware) IsValid() bool {
	switch v {
	case PlatformZoom, PlatformMeet, PlatformTeams:
		return true
	}
	return false
}

// Platforms returns every supported platform, in display order. The form's
// mutually exclusive platform group is rendered from this list.
func Platforms() []VideoCallSoftware {
	return []VideoCallSoftware{PlatformZoom, PlatformMeet, PlatformTeams}
}

// Durations returns every supported duration, in display order.
func Durations() []Duration {
	return []Duration{Duration15, Duration30, Duration45, Duration60}
}
