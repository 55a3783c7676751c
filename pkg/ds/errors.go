package ds

import "errors"

var (
	// ErrInvalidArgument is returned when a required collaborator such as a
	// mapper, provider or handler is nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when the wrong variant of a tagged union is read.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound is returned when the value of an absent optional is read.
	ErrNotFound = errors.New("not found")
)
