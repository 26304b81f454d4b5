// Package filesystem abstracts directory traversal and file access behind a
// small provider interface, enabling production use against the OS filesystem
// and tests against an in-memory filesystem.
package filesystem
