package core

import (
	"cmp"
	"fmt"
	"time"
)

// dueDateLayout accepts DD-MM-YYYY as well as unpadded day and month values.
const dueDateLayout = "2-1-2006"

// Date is a calendar date without a time of day or time zone.
// The zero value means "no date".
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date. Out-of-range values are normalized the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()

	return Date{year: year, month: month, day: day}
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDueDate parses a due date in DD-MM-YYYY format.
// The year must have four digits and the date must exist in the calendar.
func ParseDueDate(value string) (Date, error) {
	t, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, value)
	}

	return DateOf(t), nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// Compare returns -1 if d is before other, +1 if it is after, and 0 if both are the same day.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(int(d.month), int(other.month))
	default:
		return cmp.Compare(d.day, other.day)
	}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as DD-MM-YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.day, int(d.month), d.year)
}

