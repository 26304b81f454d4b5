package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/umbrella/internal/cli"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(umbrella.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(umbrella.ExitCodeForError(err))
	}
}
