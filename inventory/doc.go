// Package inventory reads a library's book inventory from a CSV export.
//
// The file must have a header row containing the columns Title, Author, Year, Status,
// and DueDate (exact, case-sensitive names). Additional columns are ignored.
// Rows whose Year is not an integer are skipped with a warning; everything else is
// kept as text and interpreted later by the queries.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called an 'adapter' (driven side).
package inventory
