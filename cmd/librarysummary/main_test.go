package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-summary/core"
	"github.com/AntonStoeckl/library-summary/shell"
	. "github.com/AntonStoeckl/library-summary/testutil/helper" //nolint:revive
)

func givenToday() core.Date {
	return core.NewDate(2024, time.June, 15)
}

// givenWorkingDir switches into a fresh directory, since the report is always written to the working directory.
func givenWorkingDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })

	return dir
}

func Test_Run_WritesReportForMixedInventory(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"A,Author A,1990,Available,",
		"B,Author B,2020,Borrowed,01-01-2000",
		"C,Author C,2010,Borrowed,01-01-2999",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	expected := "Library Summary Report\n" +
		"=======================\n" +
		"Available Books: 1\n" +
		"Borrowed Books: 2\n" +
		"\n" +
		"Oldest Book: A (1990) by Author A\n" +
		"Newest Book: B (2020) by Author B\n" +
		"\n" +
		"Overdue Books:\n" +
		"- B by Author B (Due: 01-01-2000)\n"
	assert.Equal(t, expected, ReadFile(t, filepath.Join(dir, defaultOutputFile)))
	assert.Contains(t, stdout.String(), shell.LogMsgReportGenerated)
	assert.Contains(t, stdout.String(), "output="+defaultOutputFile)
}

func Test_Run_ProducesByteIdenticalReportsForSameInput(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"Dune,Frank Herbert,1965,Borrowed,01-02-2020",
		"Emma,Jane Austen,1815,Available,",
		"Bad,Someone,n/a,Available,",
	)
	outputPath := filepath.Join(dir, defaultOutputFile)
	require.Equal(t, exitOK, run([]string{input}, &bytes.Buffer{}, givenToday()))
	first := ReadFile(t, outputPath)

	// act
	code := run([]string{input}, &bytes.Buffer{}, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.Equal(t, first, ReadFile(t, outputPath))
	assert.NotContains(t, first, "Bad", "rows with an invalid year never reach the report")
}

func Test_Run_ReportsWarningsOnStdoutAndContinues(t *testing.T) {
	// arrange
	givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"Dune,Frank Herbert,1965,Borrowed,2020-02-01",
		"Emma,Jane Austen,eighteen,Available,",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "level=WARN")
	assert.Contains(t, stdout.String(), shell.LogMsgInvalidYear)
	assert.Contains(t, stdout.String(), "title=Emma")
	assert.Contains(t, stdout.String(), shell.LogMsgInvalidDueDate)
	assert.Contains(t, stdout.String(), "title=Dune")
}

func Test_Run_FailsWithoutOutputWhenDueDateColumnIsMissing(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	input := GivenCSVFile(t,
		"Title,Author,Year,Status",
		"A,Author A,1990,Available",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout.String(), shell.LogMsgInventoryLoadFailed)
	assert.NoFileExists(t, filepath.Join(dir, defaultOutputFile))
}

func Test_Run_FailsWhenNoRowHasAValidYear(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"A,Author A,first,Available,",
		"B,Author B,second,Borrowed,01-01-2000",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout.String(), shell.LogMsgInvalidYear)
	assert.Contains(t, stdout.String(), shell.LogMsgNoValidEntries)
	assert.Contains(t, stdout.String(), shell.LogMsgNoValidData)
	assert.NoFileExists(t, filepath.Join(dir, defaultOutputFile))
}

func Test_Run_FailsWhenInputFileDoesNotExist(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	var stdout bytes.Buffer

	// act
	code := run([]string{filepath.Join(dir, "missing.csv")}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout.String(), "input file not found")
	assert.NoFileExists(t, filepath.Join(dir, defaultOutputFile))
}

func Test_Run_PrintsUsageForWrongArgumentCount(t *testing.T) {
	testCases := map[string][]string{
		"no arguments":         {},
		"two arguments":        {"a.csv", "b.csv"},
		"flag before the file": {"-debug", "a.csv"},
	}

	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			// arrange
			givenWorkingDir(t)
			var stdout bytes.Buffer

			// act
			code := run(args, &stdout, givenToday())

			// assert
			assert.Equal(t, exitFailure, code)
			assert.Contains(t, stdout.String(), usage)
		})
	}
}

func Test_Run_SucceedsEvenWhenReportCannotBeWritten(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, defaultOutputFile), 0o755), "a directory blocks the report file")
	input := GivenInventoryFile(t,
		"A,Author A,1990,Available,",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), shell.LogMsgReportWriteFailed)
	assert.Contains(t, stdout.String(), shell.LogMsgReportGenerated)
}

func Test_Run_FailsForTwoArgumentsEvenWhenTheFileExists(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"A,Author A,1990,Available,",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{"-debug", input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, usage+"\n", stdout.String())
	assert.NoFileExists(t, filepath.Join(dir, defaultOutputFile))
}

func Test_Run_AcceptsInputFileNameStartingWithDash(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	content := InventoryHeader + "\n" + "A,Author A,1990,Available,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "-notes.csv"), []byte(content), 0o600))
	var stdout bytes.Buffer

	// act
	code := run([]string{"-notes.csv"}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.NotContains(t, stdout.String(), usage)
	assert.Contains(t, ReadFile(t, filepath.Join(dir, defaultOutputFile)), "Oldest Book: A (1990) by Author A")
}

func Test_Run_LogsAtInfoLevelOnly(t *testing.T) {
	// arrange
	givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"A,Author A,1990,Available,",
	)
	var stdout bytes.Buffer

	// act
	code := run([]string{input}, &stdout, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.NotContains(t, stdout.String(), "level=DEBUG")
	assert.NotContains(t, stdout.String(), shell.LogMsgInventoryLoaded)
}

func Test_Generate_LogsReportGeneratedWithOutputAndDuration(t *testing.T) {
	// arrange
	dir := givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"A,Author A,1990,Available,",
		"B,Author B,2020,Borrowed,01-01-2000",
	)
	cfg, err := parseArgs([]string{input})
	require.NoError(t, err)
	logger, spy := NewSpyLogger()

	// act
	code := generate(cfg, logger, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.FileExists(t, filepath.Join(dir, defaultOutputFile))
	assert.True(t, spy.HasInfoLogWithMessage(shell.LogMsgReportGenerated).
		WithAttr(shell.LogAttrOutput, defaultOutputFile).
		WithAttrKey(shell.LogAttrDurationMS).
		Assert())
	assert.True(t, spy.HasDebugLogWithMessage(shell.LogMsgInventoryLoaded).
		WithAttr(shell.LogAttrRecordCount, "2").
		Assert())
}

func Test_Generate_LogsTheSameRecordsForRepeatedRuns(t *testing.T) {
	// arrange
	givenWorkingDir(t)
	input := GivenInventoryFile(t,
		"Dune,Frank Herbert,1965,Borrowed,not-a-date",
		"Emma,Jane Austen,eighteen,Available,",
		"Ulysses,James Joyce,1922,Available,",
	)
	cfg, err := parseArgs([]string{input})
	require.NoError(t, err)
	logger, spy := NewSpyLogger()
	require.Equal(t, exitOK, generate(cfg, logger, givenToday()))
	first := logMessages(spy.GetRecords())
	spy.Reset()
	require.Equal(t, 0, spy.GetRecordCount())

	// act
	code := generate(cfg, logger, givenToday())

	// assert
	assert.Equal(t, exitOK, code)
	assert.Equal(t, first, logMessages(spy.GetRecords()))
	assert.Equal(t, []string{
		shell.LogMsgInvalidYear,
		shell.LogMsgInventoryLoaded,
		shell.LogMsgInvalidDueDate,
		shell.LogMsgReportGenerated,
	}, first)
}

func logMessages(records []slog.Record) []string {
	messages := make([]string, 0, len(records))
	for _, record := range records {
		messages = append(messages, record.Message)
	}

	return messages
}
