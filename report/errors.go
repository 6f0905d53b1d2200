package report

import "errors"

// ErrWriteReport is returned when the summary report cannot be written.
var ErrWriteReport = errors.New("unable to write summary report")
