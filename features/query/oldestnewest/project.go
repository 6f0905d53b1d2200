package oldestnewest

import (
	"cmp"
	"slices"

	"github.com/AntonStoeckl/library-summary/core"
)

// ProjectOldestAndNewest implements the query logic to determine the oldest and the newest book.
// This is a pure function with no side effects - the input slice is not reordered.
//
// Query Logic:
//
//	GIVEN: At least one valid book record
//	WHEN: OldestAndNewest query is executed
//	THEN: The first and last record of a stable sort by year ascending are returned
//	TIE-BREAK: Input order (oldest = first listed among equal years, newest = last listed)
//	ERROR: ErrNoRecords if records is empty
func ProjectOldestAndNewest(records core.BookRecords) (OldestAndNewest, error) {
	if len(records) == 0 {
		return OldestAndNewest{}, ErrNoRecords
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b core.BookRecord) int {
		return cmp.Compare(a.Year, b.Year)
	})

	return OldestAndNewest{
		Oldest: sorted[0],
		Newest: sorted[len(sorted)-1],
	}, nil
}
