package overduebooks

import (
	"github.com/AntonStoeckl/library-summary/core"
)

// OverdueBooks represents the query result containing all overdue books in inventory order.
type OverdueBooks struct {
	Books core.BookRecords
	Count int
}
