// Package helper provides testing utilities for the library summary report.
//
// It contains a slog.Handler spy for capturing and validating log output during tests,
// and fixture helpers for arranging inventory files and book records.
package helper
