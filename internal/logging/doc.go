// Package logging provides concrete implementations of the umbrella.Logger
// interface.
package logging
