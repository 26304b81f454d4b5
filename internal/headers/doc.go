// Package headers implements the umbrella header pipeline pieces that operate
// on include directives: discovering header files on disk, reading the curated
// static include list, and reconciling the two.
//
// The static list is the source of truth. A purely lexicographic ordering of
// discovered headers does not respect the internal dependency order the
// includes need to compile, so the scan exists only to detect drift from the
// curated list, never to generate final content.
package headers
