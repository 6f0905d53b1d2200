// Package overduebooks implements the Overdue Books query use case.
//
// A book is overdue when it is borrowed and its due date (DD-MM-YYYY) lies strictly
// before today. Borrowed books without a due date are skipped silently, borrowed books
// with a malformed due date are skipped with a warning. The query keeps inventory order.
//
// Today is passed in by the caller, which keeps the projection pure and testable.
package overduebooks
