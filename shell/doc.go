// Package shell provides the infrastructure shared by the report pipeline:
// the console logger and the log message and attribute names.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
