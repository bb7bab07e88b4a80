// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "failed to read template",
//	    err,
//	    map[string]any{
//	        "path": "raspi_master.yaml",
//	    },
//	)
package errors
