// Package core contains the domain types for the library summary report:
// validated book records read from an inventory export and the calendar date
// value used for due-date checks.
//
// Everything in this package is pure. Reading files, logging, and writing the
// report live in the packages that use core.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
