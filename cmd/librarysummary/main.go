package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AntonStoeckl/library-summary/core"
	"github.com/AntonStoeckl/library-summary/features/query/oldestnewest"
	"github.com/AntonStoeckl/library-summary/features/query/overduebooks"
	"github.com/AntonStoeckl/library-summary/features/query/statuscounts"
	"github.com/AntonStoeckl/library-summary/inventory"
	"github.com/AntonStoeckl/library-summary/report"
	"github.com/AntonStoeckl/library-summary/shell"
)

const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, core.Today()))
}

// run executes one report generation and returns the process exit code.
// All diagnostics go to stdout.
func run(args []string, stdout io.Writer, today core.Date) int {
	cfg, err := parseArgs(args)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, usage)

		return exitFailure
	}

	logger := shell.NewConsoleLogger(stdout, cfg.LogLevel, shell.NewRunID())

	return generate(cfg, logger, today)
}

// generate loads the inventory, runs the queries and writes the report.
func generate(cfg Config, logger core.Logger, today core.Date) int {
	startTime := time.Now()

	records, err := inventory.Load(cfg.InputPath, logger)
	if err != nil {
		logger.Error(shell.LogMsgInventoryLoadFailed, shell.LogAttrPath, cfg.InputPath, shell.LogAttrError, err.Error())

		return exitFailure
	}

	if len(records) == 0 {
		logger.Error(shell.LogMsgNoValidData)

		return exitFailure
	}

	counts := statuscounts.ProjectStatusCounts(records)

	oldestAndNewest, err := oldestnewest.ProjectOldestAndNewest(records)
	if err != nil {
		// unreachable, records is not empty
		logger.Error(shell.LogMsgNoValidData, shell.LogAttrError, err.Error())

		return exitFailure
	}

	overdue := overduebooks.ProjectOverdueBooks(records, today, logger)

	summary := report.BuildSummary(counts, oldestAndNewest, overdue)

	// A failed write is logged by WriteSummary; it does not fail the run.
	_ = report.WriteSummary(cfg.OutputPath, summary, logger)

	logger.Info(
		shell.LogMsgReportGenerated,
		shell.LogAttrOutput, cfg.OutputPath,
		shell.LogAttrDurationMS, shell.ToMilliseconds(time.Since(startTime)),
	)

	return exitOK
}
