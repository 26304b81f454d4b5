package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.h")
	if err := os.WriteFile(filePath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()

	_, err := fs.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	nsDir := filepath.Join(dir, "include", "openssl")
	if err := os.MkdirAll(nsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nsDir, "ssl.h"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()
	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var found bool
	err = d.Walk(func(file File, err error) error {
		if err != nil {
			return err
		}
		if !file.Info().IsDir() && file.Info().Name() == "ssl.h" {
			found = true
			if filepath.ToSlash(file.RelativePath()) != "include/openssl/ssl.h" {
				t.Errorf("RelativePath() = %q", file.RelativePath())
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if !found {
		t.Error("Walk() did not visit ssl.h")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "static_includes.txt")
	expected := "#import <openssl/ssl.h>\n"
	if err := os.WriteFile(filePath, []byte(expected), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}
