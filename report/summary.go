package report

import (
	"github.com/AntonStoeckl/library-summary/core"
	"github.com/AntonStoeckl/library-summary/features/query/oldestnewest"
	"github.com/AntonStoeckl/library-summary/features/query/overduebooks"
	"github.com/AntonStoeckl/library-summary/features/query/statuscounts"
)

// Summary holds everything that goes into the report.
type Summary struct {
	Available int
	Borrowed  int
	Oldest    core.BookRecord
	Newest    core.BookRecord
	Overdue   core.BookRecords
}

// BuildSummary assembles a Summary from the query results.
func BuildSummary(
	counts statuscounts.StatusCounts,
	oldestAndNewest oldestnewest.OldestAndNewest,
	overdue overduebooks.OverdueBooks,
) Summary {
	return Summary{
		Available: counts.Available,
		Borrowed:  counts.Borrowed,
		Oldest:    oldestAndNewest.Oldest,
		Newest:    oldestAndNewest.Newest,
		Overdue:   overdue.Books,
	}
}
