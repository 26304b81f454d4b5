package umbrella

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Umbrella header written successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or unreadable input
	ExitDivergence   = 20 // Static list and scanned headers disagree
	ExitEmptyContent = 21 // Resolved include content is empty
)

const (
	// HeaderExtension is the filename suffix that identifies header files
	// during a directory scan.
	HeaderExtension = ".h"

	// DefaultNamespace is the directory segment at which an include path
	// starts. A scanned file emits a directive only when its path contains
	// this segment; everything before it is stripped.
	DefaultNamespace = "openssl"
)
