package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonStoeckl/library-summary/core"
	"github.com/AntonStoeckl/library-summary/shell"
)

// WriteSummary creates or truncates the file at path and renders the summary into it.
//
// A failure is logged and returned wrapped in ErrWriteReport. The command line tool
// deliberately does not treat it as fatal.
func WriteSummary(path string, s Summary, logger core.Logger) error {
	if err := writeFile(path, s); err != nil {
		logger.Error(shell.LogMsgReportWriteFailed, shell.LogAttrPath, path, shell.LogAttrError, err.Error())

		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	return nil
}

func writeFile(path string, s Summary) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return Render(file, s)
}
