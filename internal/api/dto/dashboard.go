package dto

import "github.com/Harshitduggal1/scheduling-software/internal/dashboard"

// ListViewResponse wraps the rendered event type list. FormOptions ship
// alongside so the creation form renders the same closed sets the server
// will enforce.
type ListViewResponse struct {
	View        dashboard.ListView `json:"view"`
	FormOptions FormOptions        `json:"formOptions"`
}

// FormOptions enumerates the selectable values of the event type form.
type FormOptions struct {
	Durations []int    `json:"durations"`
	Platforms []string `json:"platforms"`
}
