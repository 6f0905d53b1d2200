package core

import (
	"strings"
)

const (
	// StatusAvailable is the normalized status of a book that is on the shelf.
	StatusAvailable = "available"

	// StatusBorrowed is the normalized status of a book that is lent to a reader.
	StatusBorrowed = "borrowed"

	// UnknownTitle is used in diagnostics for rows without a title.
	UnknownTitle = "Unknown"
)

// Instead of implementing full value objects, I'm using some alias types here ...

// TitleString represents a book title.
type TitleString = string

// AuthorString represents a book author.
type AuthorString = string

// DueDateString represents a raw due date as it appears in the inventory (DD-MM-YYYY).
type DueDateString = string

// BookRecord represents one validated row of the inventory.
// A BookRecord only exists once its year has been parsed successfully.
type BookRecord struct {
	Title   TitleString
	Author  AuthorString
	Year    int
	Status  string
	DueDate DueDateString
}

// BookRecords is an ordered sequence of book records in input order.
type BookRecords = []BookRecord

// BuildBookRecord creates a new BookRecord.
func BuildBookRecord(title TitleString, author AuthorString, year int, status string, dueDate DueDateString) BookRecord {
	return BookRecord{
		Title:   title,
		Author:  author,
		Year:    year,
		Status:  status,
		DueDate: dueDate,
	}
}

// NormalizedStatus returns the status trimmed of surrounding whitespace and lower-cased.
func (r BookRecord) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

// IsAvailable reports whether the normalized status is "available".
func (r BookRecord) IsAvailable() bool {
	return r.NormalizedStatus() == StatusAvailable
}

// IsBorrowed reports whether the normalized status is "borrowed".
func (r BookRecord) IsBorrowed() bool {
	return r.NormalizedStatus() == StatusBorrowed
}

// HasDueDate reports whether a due date was given at all.
// Whitespace-only values count as given and will fail parsing.
func (r BookRecord) HasDueDate() bool {
	return r.DueDate != ""
}

// TitleOrUnknown returns the title, or "Unknown" if the title is empty.
func (r BookRecord) TitleOrUnknown() string {
	return TitleOrUnknown(r.Title)
}

// TitleOrUnknown returns title, or "Unknown" if title is empty.
func TitleOrUnknown(title string) string {
	if title == "" {
		return UnknownTitle
	}

	return title
}
