package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AntonStoeckl/library-summary/core"
	"github.com/AntonStoeckl/library-summary/shell"
)

// Load reads the inventory file at path and returns all rows with a valid year, in file order.
//
// Fatal conditions are returned as errors wrapping ErrInputFileNotFound, ErrInputFileUnreadable,
// or ErrMissingColumns. Rows with an invalid year are skipped and reported as warnings on logger.
// An empty result is not an error, it is only reported as a warning.
func Load(path string, logger core.Logger) (core.BookRecords, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: %w", ErrInputFileUnreadable, err)
	}
	defer func() {
		_ = file.Close() // read-only, nothing to flush
	}()

	return LoadFrom(file, logger)
}

// LoadFrom reads an inventory from r. See Load for the semantics.
func LoadFrom(r io.Reader, logger core.Logger) (core.BookRecords, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(RequiredColumns, ", "))
		}

		return nil, fmt.Errorf("%w: %w", ErrInputFileUnreadable, err)
	}

	index, err := buildColumnIndex(header)
	if err != nil {
		return nil, err
	}

	records := make(core.BookRecords, 0)
	rowsRead, rowsSkipped := 0, 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputFileUnreadable, err)
		}

		rowsRead++
		line, _ := reader.FieldPos(0)

		if !validUTF8(row) {
			return nil, fmt.Errorf("%w: invalid UTF-8 on line %d", ErrInputFileUnreadable, line)
		}

		record, err := buildRecord(index, row)
		if err != nil {
			rowsSkipped++
			logger.Warn(
				shell.LogMsgInvalidYear,
				shell.LogAttrTitle, core.TitleOrUnknown(index.field(row, columnTitle)),
				shell.LogAttrYear, index.field(row, columnYear),
				shell.LogAttrLine, line,
			)

			continue
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		logger.Warn(shell.LogMsgNoValidEntries)
	}

	logger.Debug(
		shell.LogMsgInventoryLoaded,
		shell.LogAttrRowsRead, rowsRead,
		shell.LogAttrRowsSkipped, rowsSkipped,
		shell.LogAttrRecordCount, len(records),
	)

	return records, nil
}

// buildRecord coerces one row into a BookRecord. Only the year is validated.
func buildRecord(index columnIndex, row []string) (core.BookRecord, error) {
	year, err := parseYear(index.field(row, columnYear))
	if err != nil {
		return core.BookRecord{}, err
	}

	return core.BuildBookRecord(
		index.field(row, columnTitle),
		index.field(row, columnAuthor),
		year,
		index.field(row, columnStatus),
		index.field(row, columnDueDate),
	), nil
}

// parseYear accepts a base-10 integer with optional sign, surrounded by optional whitespace.
func parseYear(value string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidYear, value)
	}

	return year, nil
}

func validUTF8(row []string) bool {
	for _, field := range row {
		if !utf8.ValidString(field) {
			return false
		}
	}

	return true
}
