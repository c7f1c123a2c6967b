package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account on the scheduling platform. Username doubles
// as the public booking namespace ({base-url}/{username}/{slug}), so it is
// unique and immutable after onboarding.
type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email           string    `json:"email" gorm:"uniqueIndex:idx_user_email;not null"`
	Username        string    `json:"username" gorm:"uniqueIndex:idx_user_username;not null"`
	FullName        string    `json:"fullName" gorm:"type:varchar(100);not null"`
	ProfileImageURL string    `json:"profileImage" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt" gorm:"not null;default:current_timestamp"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"not null;default:current_timestamp"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is called before creating a new user record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasProfileImage reports whether a stored image exists. The settings form
// shows the image (with a remove control) when true and the upload control
// when false.
func (u *User) HasProfileImage() bool {
	return u.ProfileImageURL != ""
}
