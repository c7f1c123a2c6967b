package dto

import (
	"github.com/google/uuid"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/user"
)

// SettingsFormRequest is the profile settings form payload. ProfileImage
// is the hidden field value: empty means the image was removed locally
// and the stored value should be cleared.
type SettingsFormRequest struct {
	FullName     string `json:"fullName"`
	ProfileImage string `json:"profileImage"`
}

func (r SettingsFormRequest) Values() map[string]string {
	return map[string]string{
		user.FieldFullName:     r.FullName,
		user.FieldProfileImage: r.ProfileImage,
	}
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	ProfileImage string    `json:"profileImage"`
}

// SettingsResponse adds form support data: email renders as a read-only
// field, and the affordance flag picks the upload control versus the
// current image.
type SettingsResponse struct {
	User      UserResponse `json:"user"`
	HasImage  bool         `json:"hasImage"`
	EmailLock bool         `json:"emailReadOnly"`
}

type SettingsSubmissionResponse struct {
	Status      string              `json:"status"`
	User        *UserResponse       `json:"user,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

func UserToResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		ProfileImage: u.ProfileImageURL,
	}
}
