package overduebooks

import (
	"github.com/AntonStoeckl/library-summary/core"
	"github.com/AntonStoeckl/library-summary/shell"
)

// ProjectOverdueBooks implements the query logic to determine all overdue books as of today.
// Apart from warnings about malformed due dates, it has no side effects.
//
// Query Logic:
//
//	GIVEN: All valid book records and today's date
//	WHEN: OverdueBooks query is executed
//	THEN: OverdueBooks struct is returned
//	INCLUDES: Borrowed records whose due date is strictly before today
//	EXCLUDES: Records that are not borrowed, have no due date, or are due today or later
//	WARNS: For borrowed records whose due date cannot be parsed (record excluded)
func ProjectOverdueBooks(records core.BookRecords, today core.Date, logger core.Logger) OverdueBooks {
	overdue := make(core.BookRecords, 0)

	for _, record := range records {
		if !record.IsBorrowed() || !record.HasDueDate() {
			continue
		}

		dueDate, err := core.ParseDueDate(record.DueDate)
		if err != nil {
			logger.Warn(
				shell.LogMsgInvalidDueDate,
				shell.LogAttrTitle, record.Title,
				shell.LogAttrDueDate, record.DueDate,
			)

			continue
		}

		if dueDate.Before(today) {
			overdue = append(overdue, record)
		}
	}

	return OverdueBooks{
		Books: overdue,
		Count: len(overdue),
	}
}
