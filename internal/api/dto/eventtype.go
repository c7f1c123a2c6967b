package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
)

// EventTypeFormRequest carries the raw form payload for create and edit.
// Values stay strings end to end; the shared schema validates and coerces
// them, so the handler never pre-judges the input.
type EventTypeFormRequest struct {
	Title             string `json:"title"`
	URL               string `json:"url"`
	Description       string `json:"description"`
	Duration          string `json:"duration"`
	VideoCallSoftware string `json:"videoCallSoftware"`
}

// Values flattens the request into the field map the schema consumes.
func (r EventTypeFormRequest) Values() map[string]string {
	return map[string]string{
		eventtype.FieldTitle:       r.Title,
		eventtype.FieldURL:         r.URL,
		eventtype.FieldDescription: r.Description,
		eventtype.FieldDuration:    r.Duration,
		eventtype.FieldVideoCall:   r.VideoCallSoftware,
	}
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type EventTypeResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	URL               string    `json:"url"`
	Description       string    `json:"description"`
	Duration          int       `json:"duration"`
	VideoCallSoftware string    `json:"videoCallSoftware"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SubmissionResponse is the persistence envelope: "success" carries the
// record, "error" carries per-field messages.
type SubmissionResponse struct {
	Status      string              `json:"status"`
	Record      *EventTypeResponse  `json:"record,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

type CopyLinkResponse struct {
	BookingURL string `json:"bookingUrl"`
}

func EventTypeToResponse(record *eventtype.EventType) *EventTypeResponse {
	return &EventTypeResponse{
		ID:                record.ID,
		Title:             record.Title,
		URL:               record.URL,
		Description:       record.Description,
		Duration:          int(record.Duration),
		VideoCallSoftware: string(record.VideoCall),
		Active:            record.Active,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
