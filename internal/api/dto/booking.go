package dto

// PublicProfileResponse is the host's card on the public booking page.
type PublicProfileResponse struct {
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// BookingPageResponse backs the public {username}/{slug} booking page.
type BookingPageResponse struct {
	User      PublicProfileResponse `json:"user"`
	EventType *EventTypeResponse    `json:"eventType"`
}
