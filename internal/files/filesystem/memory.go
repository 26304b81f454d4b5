package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File for in-memory files.
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory for the in-memory filesystem.
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	// Deterministic order for tests; callers must not depend on it.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		if err := fn(entry, nil); err != nil {
			return err
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes regardless of host platform.
type MemoryFileSystem struct {
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}

	mfs.files[root] = &memoryFile{
		absPath: root,
		relPath: ".",
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the in-memory filesystem. Relative paths are resolved
// against the filesystem root. Parent directories are created implicitly.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)

	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	data := []byte(content)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relPath,
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}

	mfs.ensureDirectories(absPath)
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if strings.HasPrefix(p, "/") {
		return path.Clean(p)
	}
	return path.Clean(path.Join(mfs.root, p))
}

func (mfs *MemoryFileSystem) ensureDirectories(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: strings.TrimPrefix(dir, mfs.root+"/"),
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	mfs.ensureDirectories(dir)
}

func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		if p == basePath || strings.HasPrefix(p, basePath+"/") || basePath == "/" {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open.
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	var absPath string
	if openPath == "." || openPath == "" {
		absPath = mfs.root
	} else {
		absPath = mfs.abs(openPath)
	}

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return file.content, nil
}

// Stat implements FileSystemProvider.Stat.
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.abs(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return file.info, nil
}
