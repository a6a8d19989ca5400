// Package logging provides structured logging for bootcfg.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent by default so that library users and scripted CLI runs see only the
// command output; set BOOTCFG_LOG_LEVEL or pass --log-level to enable it.
//
// # Log Levels
//
//   - Debug: Per-parse summaries, classification details
//   - Info: Files read and written, property edits
//   - Warn: Unrecognized lines, skipped writes
//   - Error: I/O failures
//
// # Structured Logging
//
//	logging.Info("Config file parsed",
//	    zap.String("path", "/boot/firmware/config.txt"),
//	    zap.Int("sections", 4),
//	)
//
// Domain helpers cover the common events:
//
//	logging.LogParse(path, sections, lines)
//	logging.LogUnrecognizedLine(path, index, line)
//	logging.LogWrite(path, size)
//	logging.LogEdit(section, property, oldValue, newValue)
//
// # Configuration
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Logs go to stderr in console format so they never mix with config text
// written to stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// should be called once at startup.
package logging
