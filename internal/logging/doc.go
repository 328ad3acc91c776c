// Package logging provides structured logging for numedit.
//
// This package wraps a global zap logger with convenience functions for the
// events an editing session produces: value changes, rejected edits and
// rejected steps. Logging is silent unless a level is requested.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Every value change, rejected edit and refused step
//   - Info: Preset loads and saves
//   - Warn: Recoverable problems such as clipboard failures
//   - Error: Command failures
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Preset loaded",
//	    zap.String("name", "rgb"),
//	    zap.String("mode", "color"),
//	)
//
// # Specialized Logging
//
//	logging.LogValueChange("step", "98", "99")
//	logging.LogRejectedEdit("ipv4", "10.0.0", err)
//	logging.LogRejectedStep("up", "98", "rejected: above maximum")
//	logging.LogSettingChange("mode", "decimal", "hex")
//
// # Configuration
//
// Initialize logging at startup, either from a flag or from NUMEDIT_LOG_LEVEL:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr, or to the file named by NUMEDIT_LOG_FILE. The
// interactive editor takes over the terminal, so use the file when
// debugging it.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically. Initialize and SetLogger are not and
// belong in startup code and tests.
package logging
