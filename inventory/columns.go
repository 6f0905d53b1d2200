package inventory

import (
	"fmt"
	"strings"
)

const (
	columnTitle   = "Title"
	columnAuthor  = "Author"
	columnYear    = "Year"
	columnStatus  = "Status"
	columnDueDate = "DueDate"
)

// RequiredColumns lists the header names every inventory file must contain.
var RequiredColumns = []string{columnTitle, columnAuthor, columnYear, columnStatus, columnDueDate}

// columnIndex maps header names to their position in a row.
type columnIndex map[string]int

// buildColumnIndex indexes the header and verifies that all required columns are present.
// For duplicated names the last occurrence wins.
func buildColumnIndex(header []string) (columnIndex, error) {
	index := make(columnIndex, len(header))
	for i, name := range header {
		index[name] = i
	}

	missing := make([]string, 0)
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return index, nil
}

// field returns the value of the named column, or "" if the row is too short.
func (idx columnIndex) field(row []string, name string) string {
	i := idx[name]
	if i >= len(row) {
		return ""
	}

	return row[i]
}
