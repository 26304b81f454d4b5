package umbrella

import (
	"sort"
	"strings"
)

// IncludeDirective is a single include line of the form "#import <openssl/ssl.h>".
// A directive has no identity beyond its text; equality is exact string equality.
type IncludeDirective string

// IncludeList is an ordered sequence of include directives read from a declared
// source, either the curated static list file or a directory scan. Two lists are
// equivalent when their multisets of directives are equal, independent of order.
type IncludeList []IncludeDirective

// Join concatenates the directives with newlines, preserving list order.
func (l IncludeList) Join() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = string(d)
	}
	return strings.Join(lines, "\n")
}

// Sorted returns a lexicographically sorted copy. The receiver is not modified.
func (l IncludeList) Sorted() IncludeList {
	out := make(IncludeList, len(l))
	copy(out, l)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ReconcileResult describes how the static include list relates to the
// directives scanned from disk.
//
// ExtraInStatic holds directives declared in the static list with no matching
// header on disk (stale entries to remove). ExtraInScanned holds headers found
// on disk that the static list does not declare (new entries to add). Both are
// sorted lexicographically.
type ReconcileResult struct {
	ExtraInStatic  IncludeList
	ExtraInScanned IncludeList
}

// Equivalent reports whether the two lists agreed as multisets.
func (r ReconcileResult) Equivalent() bool {
	return len(r.ExtraInStatic) == 0 && len(r.ExtraInScanned) == 0
}

// HeaderScanner discovers header files under a directory tree and derives
// include directives from their paths.
type HeaderScanner interface {
	// Scan recursively enumerates header files under sourcePath and returns
	// one directive per matching file. Duplicate filenames at different
	// subpaths are preserved as separate entries.
	Scan(sourcePath string) (IncludeList, error)
}

// Logger provides a pluggable logging interface for umbrella operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
