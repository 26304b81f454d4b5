package headers

import (
	"errors"
	"testing"

	"github.com/vvka-141/umbrella/internal/files/filesystem"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/dist")
	return NewScannerWithFS("openssl", fs), fs
}

func TestNewScannerWithFS_InvalidArgs(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/")

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty namespace", func() { NewScannerWithFS("", fs) }},
		{"nil filesystem", func() { NewScannerWithFS("openssl", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestScan(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("include/openssl/a.h", "")
	fs.AddFile("include/openssl/b.h", "")

	list, err := s.Scan("/dist")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := map[umbrella.IncludeDirective]bool{
		"#import <openssl/a.h>": true,
		"#import <openssl/b.h>": true,
	}
	if len(list) != len(want) {
		t.Fatalf("Expected %d directives, got %d: %v", len(want), len(list), list)
	}
	// Enumeration order is not part of the contract; check set membership.
	for _, d := range list {
		if !want[d] {
			t.Errorf("Unexpected directive %q", d)
		}
	}
}

func TestScan_NestedNamespaceDirectories(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("build/stage/include/openssl/evp/digest.h", "")

	list, err := s.Scan("/dist")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(list) != 1 || list[0] != "#import <openssl/evp/digest.h>" {
		t.Errorf("Expected suffix starting at namespace, got %v", list)
	}
}

func TestScan_FilesOutsideNamespaceExcluded(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("include/openssl/ssl.h", "")
	fs.AddFile("include/internal/private.h", "")
	fs.AddFile("docs/notes.h", "")

	list, err := s.Scan("/dist")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(list) != 1 || list[0] != "#import <openssl/ssl.h>" {
		t.Errorf("Expected only the namespaced header, got %v", list)
	}
}

func TestScan_NonHeaderFilesExcluded(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("include/openssl/ssl.h", "")
	fs.AddFile("include/openssl/README.md", "")
	fs.AddFile("include/openssl/libssl.a", "")

	list, err := s.Scan("/dist")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(list) != 1 {
		t.Errorf("Expected 1 directive, got %v", list)
	}
}

func TestScan_DuplicateFilenamesPreserved(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("include/openssl/ssl.h", "")
	fs.AddFile("legacy/include/openssl/ssl.h", "")

	list, err := s.Scan("/dist")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Same derived directive twice; no deduplication.
	if len(list) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(list), list)
	}
	for _, d := range list {
		if d != "#import <openssl/ssl.h>" {
			t.Errorf("Unexpected directive %q", d)
		}
	}
}

func TestScan_MissingRoot(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.Scan("/nonexistent")
	if err == nil {
		t.Fatal("Expected error for missing scan root")
	}
	if !errors.Is(err, umbrella.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestScan_CustomNamespace(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/dist")
	fs.AddFile("include/mylib/core.h", "")
	fs.AddFile("include/openssl/ssl.h", "")
	s := NewScannerWithFS("mylib", fs)

	list, err := s.Scan("/dist")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(list) != 1 || list[0] != "#import <mylib/core.h>" {
		t.Errorf("Expected mylib directive only, got %v", list)
	}
}
