// Package generator orchestrates the umbrella header pipeline: scan the
// includes directory, read the static list, reconcile the two, populate the
// template, and write the destination file. Every step runs to completion
// before the next begins, and the destination is only written after full
// success.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/umbrella/internal/config"
	"github.com/vvka-141/umbrella/internal/files/filesystem"
	"github.com/vvka-141/umbrella/internal/headers"
	"github.com/vvka-141/umbrella/internal/populate"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

// DateFormat is the layout used for the @DATE@ placeholder.
const DateFormat = "January 2, 2006"

// Generator runs the full generate operation for one resolved configuration.
type Generator struct {
	cfg        config.Config
	fsProvider filesystem.FileSystemProvider
	logger     umbrella.Logger
	now        func() time.Time
}

// New creates a Generator using the OS filesystem and the real clock.
// Panics if logger is nil.
func New(cfg config.Config, logger umbrella.Logger) *Generator {
	return NewWithClock(cfg, logger, time.Now)
}

// NewWithClock creates a Generator with an injected clock, for reproducible
// date and year substitution in tests. Panics if logger or now is nil.
func NewWithClock(cfg config.Config, logger umbrella.Logger, now func() time.Time) *Generator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if now == nil {
		panic("now cannot be nil")
	}
	return &Generator{
		cfg:        cfg,
		fsProvider: filesystem.NewOSFileSystem(),
		logger:     logger,
		now:        now,
	}
}

// Run executes scan, reconcile, populate, and write, in that order.
//
// On divergence it returns a *umbrella.DivergenceError enumerating both
// difference sets; the destination is left untouched. No failure is retried.
func (g *Generator) Run() error {
	if err := g.cfg.Validate(g.fsProvider); err != nil {
		return err
	}

	g.logger.Verbose("scanning %s for %s files under namespace %q",
		g.cfg.IncludesDir, umbrella.HeaderExtension, g.cfg.Namespace)

	scanner := headers.NewScannerWithFS(g.cfg.Namespace, g.fsProvider)
	scanned, err := scanner.Scan(g.cfg.IncludesDir)
	if err != nil {
		return err
	}
	g.logger.Verbose("scanned %d header(s)", len(scanned))

	staticList, err := headers.ReadStaticList(g.fsProvider, g.cfg.StaticIncludes)
	if err != nil {
		return err
	}
	g.logger.Verbose("static list declares %d directive(s)", len(staticList))

	result, err := headers.Reconcile(staticList, scanned)
	if err != nil {
		return err
	}
	if !result.Equivalent() {
		return &umbrella.DivergenceError{Result: result}
	}

	templateText, err := g.fsProvider.ReadFile(g.cfg.Template)
	if err != nil {
		return fmt.Errorf("%w: template %q: %w", umbrella.ErrInvalidConfig, g.cfg.Template, err)
	}

	// The static list content goes into the output verbatim, in curated
	// order. The scan only confirmed it matches the disk state.
	now := g.now()
	output := populate.Apply(
		string(templateText),
		staticList.Join(),
		now.Format(DateFormat),
		now.Format("2006"),
	)

	if err := g.writeDest(output); err != nil {
		return err
	}

	g.logger.Info("wrote %s (%d directives)", g.cfg.Dest, len(staticList))
	return nil
}

// writeDest stages the output in a uniquely named temporary directory next to
// the destination, then moves it into place. The per-run directory name keeps
// concurrent invocations from colliding, and staging next to the destination
// keeps the final rename on one filesystem.
func (g *Generator) writeDest(output string) error {
	destDir := filepath.Dir(g.cfg.Dest)
	stageDir := filepath.Join(destDir, ".umbrella-"+uuid.NewString())
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stageDir)

	stagePath := filepath.Join(stageDir, filepath.Base(g.cfg.Dest))
	if err := os.WriteFile(stagePath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write staged output: %w", err)
	}

	// Remove any stale destination first so the move never appends into or
	// merges with previous content.
	if err := os.Remove(g.cfg.Dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale destination: %w", err)
	}

	if err := os.Rename(stagePath, g.cfg.Dest); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}
