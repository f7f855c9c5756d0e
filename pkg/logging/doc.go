// Package logging provides structured logging utilities for sysnet components.
//
// # Overview
//
// This package wraps the standard library slog package with sysnet defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sysnet", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("normalizing interfaces", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("sysnet", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("sysnet", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug sysnet --all
//	LOG_LEVEL=error sysnet --system
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "snapshot collected",
//	    "module": "sysnet",
//	    "version": "v1.0.0",
//	    "cpus": 8
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "snapshotter.normalizeInterfaces",
//	        "file": "normalize.go",
//	        "line": 45
//	    },
//	    "msg": "normalizing interfaces",
//	    "module": "sysnet",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sysnet", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("records normalized",
//	    "family", "network",
//	    "records", 4,
//	    "duration_ms", 125,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("collecting volumes")      // Development/troubleshooting
//	slog.Info("snapshot collected")      // Normal operations
//	slog.Warn("hostname unavailable")    // Degraded lookups
//	slog.Error("snapshot failed")        // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to read volume usage",
//	    "error", err,
//	    "mountpoint", mountpoint,
//	//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - installs the default logger from --log-level
//   - pkg/collector - collection progress at debug level
//   - pkg/snapshotter - degraded lookups at warn level
package logging
