package cli

import (
	"errors"

	"github.com/yaklabco/unigrid/internal/configloader"
	"github.com/yaklabco/unigrid/pkg/runner"
)

// Exit codes for unigrid.
const (
	// ExitSuccess indicates every source was decomposed and reported.
	ExitSuccess = 0

	// ExitSourcesFailed indicates at least one source could not be read.
	ExitSourcesFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates the report could not be written.
	ExitIOError = 74
)

var (
	// ErrSourcesFailed is returned when one or more sources could not be read.
	// The failures are already part of the report.
	ErrSourcesFailed = errors.New("one or more sources could not be read")

	// ErrInvalidUsage wraps command-line mistakes.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrWriteOutput wraps failures to write the report.
	ErrWriteOutput = errors.New("write output")
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.HasFailures() {
		return ExitSuccess
	}
	return ExitSourcesFailed
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSourcesFailed):
		return ExitSourcesFailed
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &validationErr), errors.Is(err, errLoadConfig):
		return ExitConfigError
	case errors.Is(err, ErrWriteOutput):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
