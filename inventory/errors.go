package inventory

import "errors"

var (
	// ErrInputFileNotFound is returned when the inventory file does not exist.
	ErrInputFileNotFound = errors.New("input file not found")

	// ErrInputFileUnreadable is returned for any other failure to open or read the inventory file.
	ErrInputFileUnreadable = errors.New("input file unreadable")

	// ErrMissingColumns is returned when the header lacks one or more required columns.
	ErrMissingColumns = errors.New("input CSV is missing one or more required columns")
)
