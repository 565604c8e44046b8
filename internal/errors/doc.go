// Package errors provides typed errors with exit codes for spaces.
//
// # Error Types
//
// SpacesError is the base error type that wraps an error with an exit code:
//
//	type SpacesError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitIOError      = 2  // Filesystem or process start failure
//	ExitParseError   = 3  // Repository URL or credentials malformed
//	ExitVCSError     = 4  // git exited non-zero
//	ExitConfigError  = 5  // Configuration error
//
// # Error Constructors
//
//	errors.IOFailure("spaces directory does not exist", err)
//	errors.ParseFailure("invalid repository location", err)
//	errors.VCSFailure("git clone failed", err)
//	errors.ConfigError("failed to parse config", err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
