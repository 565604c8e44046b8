// Package logging provides logging utilities for spaces.
//
// This package provides two categories of output:
//   - Diagnostics: structured records (via slog)
//   - User output: formatted messages for end users
//
// # Diagnostics
//
// Warnings are always written; debug records only with -v:
//
//	logging.Debug("running git", "command", cmdStr)
//	logging.Warn("failed to copy destination to clipboard", "error", err)
//	logging.Warn("skipping unreadable owner directory", "path", dir, "error", err)
//
// --json switches the records to slog's JSON handler.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Creating space for %s", repo)
//	logging.UserSuccess("Cloned into %s", dest)
//	logging.UserWarning("Ignoring --base %s without --branch", base)
//	logging.UserError("%v", err)
//
// Output destinations (see SetOutput):
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
