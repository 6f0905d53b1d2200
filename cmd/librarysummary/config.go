package main

import (
	"errors"
	"log/slog"
)

const (
	defaultOutputFile = "library_summary.txt"
	defaultLogLevel   = slog.LevelInfo
	usage             = "Usage: librarysummary books.csv"
)

// errUsage is returned when the command line does not consist of exactly one argument.
var errUsage = errors.New(usage)

// Config holds all run configuration parameters.
type Config struct {
	InputPath  string
	OutputPath string
	LogLevel   slog.Level
}

// parseArgs builds the configuration from the command line arguments (without the program name).
// The only argument is the input path, taken verbatim even when it starts with a dash.
func parseArgs(args []string) (Config, error) {
	if len(args) != 1 {
		return Config{}, errUsage
	}

	return Config{
		InputPath:  args[0],
		OutputPath: defaultOutputFile,
		LogLevel:   defaultLogLevel,
	}, nil
}
