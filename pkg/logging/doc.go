// Package logging provides structured logging utilities for raspi-recipe.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every component logs the same way. Logs are JSON on stderr, carry the
// module name and version, and include source location at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages
//   - WARN/WARNING: Potentially problematic situations (CLI default)
//   - ERROR: Failures requiring attention
//
// Unknown values fall back to INFO.
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("raspi-recipe", version, "debug")
//	slog.Debug("resolved variables", "arch", vars.Arch)
//
// Creating a logger that writes somewhere else (tests):
//
//	logger := logging.NewStructuredLoggerTo(&buf, "raspi-recipe", "v1.0.0", "info")
package logging
