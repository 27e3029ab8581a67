// Package logging provides structured logging for pokeselect.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default so the terminal UI and command output stay clean.
//
// # Log Levels
//
//   - Debug: Reducer transitions (event, before/after state, effects)
//   - Info: Catalog loading, history updates
//   - Warn: Recoverable issues (unreadable config, history save failures)
//   - Error: Command failures
//
// # Configuration
//
// Set POKESELECT_LOG_LEVEL to "debug", "info", "warn" or "error" to enable
// logging. Output goes to stderr unless POKESELECT_LOG_FILE names a file,
// which is the only sensible choice while the full-screen UI is running:
//
//	POKESELECT_LOG_LEVEL=debug POKESELECT_LOG_FILE=/tmp/pokeselect.log pokeselect
//
// Initialize once at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
