package headers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/umbrella/internal/files/filesystem"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

// Scanner discovers header files under a directory tree and derives an include
// directive from each path. Files whose path does not contain the namespace
// directory segment are silently excluded.
type Scanner struct {
	namespace  string
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a file scanner for the given namespace directory segment.
// Uses the OS filesystem. Panics if namespace is empty.
func NewScanner(namespace string) *Scanner {
	return NewScannerWithFS(namespace, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if namespace is empty or fsProvider is nil.
func NewScannerWithFS(namespace string, fsProvider filesystem.FileSystemProvider) *Scanner {
	if namespace == "" {
		panic("namespace cannot be empty")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		namespace:  namespace,
		fsProvider: fsProvider,
	}
}

// Scan recursively enumerates files under sourcePath whose name ends in the
// header extension and returns one directive per matching file. Duplicate
// filenames at different subpaths are preserved as separate entries; no
// deduplication is performed. The returned order is whatever the filesystem
// enumeration produced; callers must not depend on it.
func (s *Scanner) Scan(sourcePath string) (umbrella.IncludeList, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w: %w", sourcePath, umbrella.ErrInvalidInput, err)
	}

	var directives umbrella.IncludeList

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		if file.Info().IsDir() {
			return nil
		}
		if !strings.HasSuffix(file.Info().Name(), umbrella.HeaderExtension) {
			return nil
		}

		directive, ok := s.deriveDirective(file.Path())
		if !ok {
			// Header outside the namespace directory, intentionally dropped.
			return nil
		}

		directives = append(directives, directive)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return directives, nil
}

// deriveDirective locates the suffix of the path starting at the namespace
// directory segment and wraps it as an import directive.
// "/work/dist/include/openssl/ssl.h" with namespace "openssl" becomes
// "#import <openssl/ssl.h>".
func (s *Scanner) deriveDirective(headerPath string) (umbrella.IncludeDirective, bool) {
	segments := strings.Split(filepath.ToSlash(headerPath), "/")
	for i, segment := range segments {
		if segment == s.namespace && i < len(segments)-1 {
			suffix := strings.Join(segments[i:], "/")
			return umbrella.IncludeDirective(fmt.Sprintf("#import <%s>", suffix)), true
		}
	}
	return "", false
}

// Verify Scanner implements the interface at compile time
var _ umbrella.HeaderScanner = (*Scanner)(nil)
