package oldestnewest

import (
	"github.com/AntonStoeckl/library-summary/core"
)

// OldestAndNewest represents the query result. Oldest.Year is never greater than Newest.Year.
type OldestAndNewest struct {
	Oldest core.BookRecord
	Newest core.BookRecord
}
