// Package statuscounts implements the Book Status Counts query use case.
//
// It counts how many books in the inventory are available and how many are borrowed,
// comparing the status case- and whitespace-insensitively. Books with any other status
// are counted in neither bucket.
package statuscounts
