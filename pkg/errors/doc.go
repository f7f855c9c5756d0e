// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeLookupFailed,
//	    "hostname unavailable",
//	    map[string]any{
//	        "field": "hostname",
//	    },
//	)
//
// Callers classify failures with HasCode:
//
//	if errors.HasCode(err, errors.ErrCodeLookupFailed) {
//	    // strict lookup aborted the snapshot
//	}
package errors
