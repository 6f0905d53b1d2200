// Command librarysummary reads a library inventory CSV file and writes a plain-text
// summary report to library_summary.txt in the current working directory.
//
// Usage:
//
//	librarysummary books.csv
//
// The report contains the number of available and borrowed books, the oldest and
// the newest book by publication year, and the list of overdue borrowed books.
// The exit code is non-zero when the input cannot be used; a failure to write the
// report is logged but does not change the exit code.
package main
