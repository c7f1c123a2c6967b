package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/notification"
)

// ListItem is one event type rendered on the dashboard list.
type ListItem struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    eventtype.Duration `json:"duration"`
	Active      bool               `json:"active"`
	URL         string             `json:"url"`
	// BookingURL is the full shareable link: {base-url}/{username}/{slug}.
	BookingURL string `json:"bookingUrl"`
	// PreviewPath opens the public booking page for this event type.
	PreviewPath string `json:"previewPath"`
	EditPath    string `json:"editPath"`
	// DeletePath leads to the confirmation page; deletion is never a
	// single-click action.
	DeletePath string `json:"deletePath"`
}

// ListView is the dashboard's event type list in render order.
type ListView struct {
	Items []ListItem `json:"items"`
	// Empty drives the zero-state panel: explanatory copy plus a creation
	// call to action instead of a bare empty list.
	Empty      bool   `json:"empty"`
	CreatePath string `json:"createPath"`
}

// BuildListView shapes a user's event types for the dashboard. Records
// arrive already ordered newest-first from the repository and the order is
// preserved verbatim.
func BuildListView(baseURL, username string, records []eventtype.EventType) ListView {
	view := ListView{
		Items:      make([]ListItem, 0, len(records)),
		Empty:      len(records) == 0,
		CreatePath: "/dashboard/new",
	}
	for _, record := range records {
		view.Items = append(view.Items, ListItem{
			ID:          record.ID,
			Title:       record.Title,
			Description: record.Description,
			Duration:    record.Duration,
			Active:      record.Active,
			URL:         record.URL,
			BookingURL:  BookingURL(baseURL, username, record.URL),
			PreviewPath: fmt.Sprintf("/%s/%s", username, record.URL),
			EditPath:    fmt.Sprintf("/dashboard/event/%s", record.ID),
			DeletePath:  fmt.Sprintf("/dashboard/event/%s/delete", record.ID),
		})
	}
	return view
}

// BookingURL builds the public booking link. Segment order is fixed:
// base URL, then username, then slug.
func BookingURL(baseURL, username, slug string) string {
	return fmt.Sprintf("%s/%s/%s", baseURL, username, slug)
}

// Clipboard abstracts the copy destination for the copy-link action.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// CopyLink copies a record's full booking URL to the clipboard and raises
// a confirmation toast so the user knows the click registered.
func CopyLink(ctx context.Context, clipboard Clipboard, notifier notification.Notifier, userID uuid.UUID, baseURL, username, slug string) error {
	url := BookingURL(baseURL, username, slug)
	if err := clipboard.WriteText(ctx, url); err != nil {
		if notifier != nil {
			notifier.Error(ctx, userID, "Could not copy the link. Please try again.")
		}
		return err
	}
	if notifier != nil {
		notifier.Success(ctx, userID, "URL has been copied")
	}
	return nil
}
