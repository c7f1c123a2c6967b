package dashboard

import "sync"

// UploadAffordance says which image control the settings form shows.
type UploadAffordance string

const (
	// AffordanceImage shows the current image with a remove control.
	AffordanceImage UploadAffordance = "image"
	// AffordanceUpload shows the upload control.
	AffordanceUpload UploadAffordance = "upload"
)

// ProfileSettingsState holds the settings form's local image value between
// page load and submit. Removing the image only clears this local value;
// the stored value changes when the form is submitted, because the current
// value travels in the form payload as a hidden field.
type ProfileSettingsState struct {
	mu       sync.Mutex
	imageURL string
}

// NewProfileSettingsState seeds the local state from the stored profile.
func NewProfileSettingsState(storedImageURL string) *ProfileSettingsState {
	return &ProfileSettingsState{imageURL: storedImageURL}
}

// Current returns the local image value, i.e. what the hidden form field
// carries on the next submit.
func (s *ProfileSettingsState) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageURL
}

// DeleteImage clears the local value. The stored profile is untouched
// until submit.
func (s *ProfileSettingsState) DeleteImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageURL = ""
}

// ApplyUpload records a completed upload's URL as the new local value.
func (s *ProfileSettingsState) ApplyUpload(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageURL = url
}

// Affordance reports which control to render, driven purely by whether a
// local image value exists.
func (s *ProfileSettingsState) Affordance() UploadAffordance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageURL == "" {
		return AffordanceUpload
	}
	return AffordanceImage
}
