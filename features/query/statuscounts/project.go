package statuscounts

import (
	"github.com/AntonStoeckl/library-summary/core"
)

// ProjectStatusCounts implements the query logic to count available and borrowed books.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All valid book records
//	WHEN: StatusCounts query is executed
//	THEN: StatusCounts struct is returned
//	INCLUDES: Records with normalized status "available" or "borrowed"
//	EXCLUDES: Records with any other status (still counted in Total)
func ProjectStatusCounts(records core.BookRecords) StatusCounts {
	counts := StatusCounts{Total: len(records)}

	for _, record := range records {
		switch record.NormalizedStatus() {
		case core.StatusAvailable:
			counts.Available++

		case core.StatusBorrowed:
			counts.Borrowed++
		}
	}

	return counts
}
