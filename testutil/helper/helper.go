package helper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-summary/core"
)

// InventoryHeader is the header line of a complete inventory file.
const InventoryHeader = "Title,Author,Year,Status,DueDate"

// GivenCSVFile writes the given lines into a new file in a temporary directory and returns its path.
func GivenCSVFile(t testing.TB, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "books.csv")
	content := strings.Join(lines, "\n") + "\n"
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "error in arranging test data")

	return path
}

// GivenInventoryFile writes a complete inventory file with the standard header and the given rows.
func GivenInventoryFile(t testing.TB, rows ...string) string {
	t.Helper()

	return GivenCSVFile(t, append([]string{InventoryHeader}, rows...)...)
}

// GivenBookRecord creates a book record without a due date.
func GivenBookRecord(title string, year int, status string) core.BookRecord {
	return core.BuildBookRecord(title, "Author of "+title, year, status, "")
}

// GivenBorrowedBookRecord creates a borrowed book record with a due date.
func GivenBorrowedBookRecord(title string, year int, dueDate string) core.BookRecord {
	return core.BuildBookRecord(title, "Author of "+title, year, "Borrowed", dueDate)
}

// ReadFile reads the whole file at path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "error in reading test output")

	return string(content)
}
