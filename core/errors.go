package core

import "errors"

var (
	// ErrInvalidYear is returned when a year value is not an integer.
	ErrInvalidYear = errors.New("invalid year format")

	// ErrInvalidDueDate is returned when a due date is not a valid DD-MM-YYYY date.
	ErrInvalidDueDate = errors.New("invalid due date format")
)
