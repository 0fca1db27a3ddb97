package error

import (
	"errors"
	"fmt"
)

// Process exit codes for the command line shell
const (
	ExitCodeOK              = 0
	ExitCodeFailure         = 1
	ExitCodeUsage           = 2
	ExitCodeSinkUnavailable = 3
)

// Base error types
var (
	// ErrSinkUnavailable is returned when the sink cannot be opened for appending
	ErrSinkUnavailable = errors.New("log sink unavailable")

	// ErrSinkClosed is reported when a write is attempted on a closed sink
	ErrSinkClosed = errors.New("log sink is closed")

	// ErrWriteFailed is reported when an entry could not be written to the sink
	ErrWriteFailed = errors.New("log entry write failed")

	// ErrFlushFailed is reported when buffered entries could not be flushed to the sink
	ErrFlushFailed = errors.New("log sink flush failed")

	// ErrInvalidArguments is returned when the command line is malformed
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidConfig is returned when the configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCode returns the process exit code for known errors
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.Is(err, ErrInvalidArguments):
		return ExitCodeUsage
	case IsSinkUnavailableError(err):
		return ExitCodeSinkUnavailable
	default:
		return ExitCodeFailure
	}
}

// SinkError represents a failed operation on the log sink
type SinkError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface for SinkError
func (e *SinkError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sink %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sink %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SinkError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sink_error",
		"path":       e.Path,
		"op":         e.Op,
		"error":      e.Err.Error(),
	}
}

// NewSinkError creates a sink error wrapping cause with the given sentinel.
// Both the sentinel and the cause remain visible to errors.Is.
func NewSinkError(path, op string, sentinel, cause error) error {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &SinkError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// IsSinkUnavailableError checks if the error is caused by a sink that could not be opened
func IsSinkUnavailableError(err error) bool {
	return errors.Is(err, ErrSinkUnavailable)
}
