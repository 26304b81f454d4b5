package umbrella

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := gen.Run()
//	if errors.Is(err, umbrella.ErrDivergence) {
//	    // Static list needs a human update; show the diff.
//	}
var (
	// ErrInvalidConfig indicates a required setting is missing or points to an
	// unreadable or non-existent resource.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput indicates the scan root does not exist or is not a
	// readable directory.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivergence indicates the scanned headers and the static include list
	// disagree. Never reconciled automatically; a human must update the
	// static list.
	ErrDivergence = errors.New("include lists diverged")

	// ErrEmptyContent indicates the resolved include content is empty.
	// Treated as a configuration bug, never as a transient condition.
	ErrEmptyContent = errors.New("empty include content")
)

// DivergenceError carries the reconciliation result so callers can render the
// difference sets. It unwraps to ErrDivergence.
type DivergenceError struct {
	Result ReconcileResult
}

func (e *DivergenceError) Error() string {
	var sb strings.Builder
	sb.WriteString("static include list and scanned headers diverged")
	if len(e.Result.ExtraInScanned) > 0 {
		sb.WriteString("; missing from static list: ")
		sb.WriteString(joinDirectives(e.Result.ExtraInScanned))
	}
	if len(e.Result.ExtraInStatic) > 0 {
		sb.WriteString("; not found on disk: ")
		sb.WriteString(joinDirectives(e.Result.ExtraInStatic))
	}
	return sb.String()
}

func (e *DivergenceError) Unwrap() error { return ErrDivergence }

func joinDirectives(l IncludeList) string {
	parts := make([]string, len(l))
	for i, d := range l {
		parts[i] = fmt.Sprintf("%q", string(d))
	}
	return strings.Join(parts, ", ")
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrDivergence):
		return ExitDivergence
	case errors.Is(err, ErrEmptyContent):
		return ExitEmptyContent
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidInput):
		return ExitConfigError
	}

	if isUsageError(err.Error()) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// isUsageError recognizes the cobra/pflag error messages produced by
// malformed command lines. These surface as plain errors from Execute(), so
// classification has to match on the message text.
func isUsageError(errStr string) bool {
	patterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"required flag",
		"arg(s)",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}
