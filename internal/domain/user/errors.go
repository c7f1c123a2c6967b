package user

import "errors"

var (
	// ErrNotFound is returned when the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when the username is already claimed.
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when the email is already registered.
	ErrEmailExists = errors.New("email already exists")
)
