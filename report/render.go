package report

import (
	"bufio"
	"fmt"
	"io"
)

const (
	headline      = "Library Summary Report"
	headlineRule  = "======================="
	noOverdueBook = "None"
)

// Render writes the summary in the report layout to w.
func Render(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, headline)
	fmt.Fprintln(bw, headlineRule)
	fmt.Fprintf(bw, "Available Books: %d\n", s.Available)
	fmt.Fprintf(bw, "Borrowed Books: %d\n\n", s.Borrowed)
	fmt.Fprintf(bw, "Oldest Book: %s (%d) by %s\n", s.Oldest.Title, s.Oldest.Year, s.Oldest.Author)
	fmt.Fprintf(bw, "Newest Book: %s (%d) by %s\n\n", s.Newest.Title, s.Newest.Year, s.Newest.Author)
	fmt.Fprintln(bw, "Overdue Books:")

	if len(s.Overdue) == 0 {
		fmt.Fprintln(bw, noOverdueBook)
	}

	for _, book := range s.Overdue {
		fmt.Fprintf(bw, "- %s by %s (Due: %s)\n", book.Title, book.Author, book.DueDate)
	}

	// bufio.Writer keeps the first write error and returns it here.
	return bw.Flush()
}
