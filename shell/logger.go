package shell

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewConsoleLogger creates the logger used by the command line tool.
// Records are written as text without timestamps so that the console output of two runs is comparable.
// Every record carries the run ID.
func NewConsoleLogger(w io.Writer, level slog.Leveler, runID uuid.UUID) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	})

	return slog.New(handler).With(LogAttrRunID, runID.String())
}

// NewRunID generates a time-ordered ID for one run.
// Falls back to a random ID if the clock sequence cannot be read.
func NewRunID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
