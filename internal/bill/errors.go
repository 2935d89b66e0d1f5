package bill

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when the analyzer or exporter command is unset.
var ErrNotConfigured = errors.New("command not configured")

// CommandError represents a failed analyzer or exporter run.
type CommandError struct {
	// Name is the operation ("analyze" or "export")
	Name string
	// ExitCode is the process exit code, -1 if it never started
	ExitCode int
	// Stderr is the captured error output
	Stderr string
	// Err is the underlying error if any
	Err error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed (exit code %d)", e.Name, e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := lastLine(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// TimeoutError represents a command killed after exceeding its deadline.
type TimeoutError struct {
	Name    string
	Timeout string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Name, e.Timeout)
}

// lastLine returns the last non-empty line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
