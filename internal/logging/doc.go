// Package logging provides structured logging for Sparx.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the application. Because Sparx is primarily a full-screen
// TUI, logging is silent by default; it is enabled by setting the
// SPARX_LOG_LEVEL environment variable, which keeps diagnostic output from
// corrupting the interactive display.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (probe attempts, file writes)
//   - Info: Normal operations (inventory changes, config generation)
//   - Warn: Non-fatal issues (skipped duplicates, stale probe results)
//   - Error: Failures (persistence errors, deploy failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("host added",
//	    zap.String("host", "node1.example.com"),
//	    zap.Int("index", 3),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
