package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for umbrella.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped output.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether umbrella should render styled output.
//
// Returns ModeNonInteractive if:
//   - stderr is not a terminal (piped output, CI/CD)
//   - UMBRELLA_NON_INTERACTIVE=1 is set
//   - CI=true is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("UMBRELLA_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	// Diagnostics go to stderr, so that is the stream that matters.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
