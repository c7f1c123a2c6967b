package eventtype

import "errors"

var (
	// ErrNotFound is returned when the requested event type does not exist
	// or belongs to a different user.
	ErrNotFound = errors.New("event type not found")

	// ErrSlugTaken is returned when the URL slug is already used by another
	// event type of the same user.
	ErrSlugTaken = errors.New("url slug already in use")

	// ErrInvalidInput is returned when a mutation carries values outside
	// the schema (callers normally catch this via field errors first).
	ErrInvalidInput = errors.New("invalid event type input")
)
