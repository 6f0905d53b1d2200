package shell

import (
	"time"
)

const (
	// LogMsgInvalidYear is logged when a row is skipped because its year is not an integer.
	LogMsgInvalidYear = "invalid year format, skipping entry"

	// LogMsgNoValidEntries is logged when the inventory contains no row with a valid year.
	LogMsgNoValidEntries = "no valid book entries found in the file"

	// LogMsgInventoryLoaded is logged when the inventory was read completely.
	LogMsgInventoryLoaded = "inventory loaded"

	// LogMsgInvalidDueDate is logged when a borrowed book's due date cannot be parsed.
	LogMsgInvalidDueDate = "invalid date format, skipping due date check"

	// LogMsgReportWriteFailed is logged when the summary report cannot be written.
	LogMsgReportWriteFailed = "unable to write to output file"

	// LogMsgReportGenerated is logged when the run completed.
	LogMsgReportGenerated = "report generated"

	// LogMsgInventoryLoadFailed is logged when the inventory cannot be read at all.
	LogMsgInventoryLoadFailed = "unable to read inventory"

	// LogMsgNoValidData is logged when there is nothing to report on.
	LogMsgNoValidData = "no valid data to process, exiting"

	// LogAttrTitle identifies the book title in logs.
	LogAttrTitle = "title"

	// LogAttrYear contains the raw year value.
	LogAttrYear = "year"

	// LogAttrDueDate contains the raw due date value.
	LogAttrDueDate = "due_date"

	// LogAttrLine indicates the line number in the input file.
	LogAttrLine = "line"

	// LogAttrPath indicates the file path being read or written.
	LogAttrPath = "path"

	// LogAttrOutput indicates the report file name.
	LogAttrOutput = "output"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// LogAttrRowsRead indicates the number of data rows read from the input.
	LogAttrRowsRead = "rows_read"

	// LogAttrRowsSkipped indicates the number of data rows skipped.
	LogAttrRowsSkipped = "rows_skipped"

	// LogAttrRecordCount indicates the number of valid records.
	LogAttrRecordCount = "records"

	// LogAttrRunID identifies one run of the report generator.
	LogAttrRunID = "run_id"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"
)

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
