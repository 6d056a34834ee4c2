package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand is a test helper that runs the CLI with the given args and
// captures both stdout and stderr.
func executeCommand(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCommand()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

// requireExitCode asserts that err is an *ExitError with the given code.
func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.Code)
}

// ---------------------------------------------------------------------------
// Help output
// ---------------------------------------------------------------------------

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	require.NoError(t, err)

	for _, sub := range []string{
		"list", "report", "browse", "taxonomy", "watch", "version", "completion",
	} {
		assert.Contains(t, stdout, sub, "help should mention %q subcommand", sub)
	}

	for _, flag := range []string{
		"--config", "--source", "--timeout", "--log-level", "--log-format", "--no-color", "--quiet",
	} {
		assert.Contains(t, stdout, flag, "help should mention %q flag", flag)
	}
}

func TestBrowseCommand_HelpListsKeys(t *testing.T) {
	stdout, _, err := executeCommand("browse", "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "shift+tab")
	assert.Contains(t, stdout, "clear all filters")
	assert.Contains(t, stdout, "--log-file")
	assert.Contains(t, stdout, "--actor")
}

// ---------------------------------------------------------------------------
// Unknown flags → exit code 2
// ---------------------------------------------------------------------------

func TestRootCommand_UnknownFlag(t *testing.T) {
	_, _, err := executeCommand("--nonexistent")
	requireExitCode(t, err, exitUsage)
}

// ---------------------------------------------------------------------------
// SilenceErrors – cobra must not print errors itself
// ---------------------------------------------------------------------------

func TestRootCommand_SilenceErrors(t *testing.T) {
	_, stderr, err := executeCommand("--nonexistent")
	require.Error(t, err)
	assert.Empty(t, stderr, "cobra should not print errors to stderr (SilenceErrors)")
}

// ---------------------------------------------------------------------------
// Configuration errors → exit code 2
// ---------------------------------------------------------------------------

func TestRootCommand_InvalidConfig(t *testing.T) {
	_, _, err := executeCommand("--config", "/nonexistent/path.yaml", "taxonomy")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := executeCommand("--log-level", "trace", "taxonomy")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootCommand_InvalidLogFormat(t *testing.T) {
	_, _, err := executeCommand("--log-format", "xml", "taxonomy")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestRootCommand_InvalidTimeout(t *testing.T) {
	_, _, err := executeCommand("--timeout", "0s", "taxonomy")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestRootCommand_InvalidTaxonomy(t *testing.T) {
	path := writeFile(t, ".pathways.yaml", "taxonomy:\n  actors: []\n")

	_, _, err := executeCommand("--config", path, "taxonomy")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, err.Error(), "taxonomy.actors")
}

// ---------------------------------------------------------------------------
// ExitError
// ---------------------------------------------------------------------------

func TestExitError_ErrorWithMessage(t *testing.T) {
	err := &ExitError{Code: 1, Err: assert.AnError}
	assert.Contains(t, err.Error(), assert.AnError.Error())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestExitError_ErrorWithoutMessage(t *testing.T) {
	err := &ExitError{Code: 42}
	assert.Equal(t, "exit code 42", err.Error())
	assert.Nil(t, err.Unwrap())
}

// ---------------------------------------------------------------------------
// completion
// ---------------------------------------------------------------------------

func TestCompletion_Bash(t *testing.T) {
	stdout, _, err := executeCommand("completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pathways")
}

func TestCompletion_UnknownShell(t *testing.T) {
	_, _, err := executeCommand("completion", "tcsh")
	require.Error(t, err)
}
