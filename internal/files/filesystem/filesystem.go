package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This keeps the abstraction layer compatible with the fs.FS ecosystem.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor.
type File interface {
	// Path returns the absolute path to the file.
	Path() string

	// RelativePath returns the path relative to the source root.
	RelativePath() string

	// Info returns file metadata.
	Info() FileInfo

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files.
type Directory interface {
	// Path returns the absolute path to the directory.
	Path() string

	// Walk traverses the directory tree, calling fn for each file and
	// directory. fn receives the entry and any traversal error; returning a
	// non-nil error from fn stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for Directory instances plus direct file
// access for single known paths.
type FileSystemProvider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
