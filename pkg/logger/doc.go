// Package logger provides a structured logging interface for logofetch.
//
// It wraps zerolog behind a small Logger interface:
//   - Level filtering (debug, info, warn, error, disabled)
//   - Child loggers with fields via WithField, WithFields and WithError
//   - Colour console output on stderr, optionally mirrored to a file
//   - A global logger for code that has no logger injected
//   - NewNopLogger and NewTestLogger for tests
//
// Usage:
//
//	if err := logger.Initialize(&cfg.Logging); err != nil {
//	    return err
//	}
//	log := logger.GetLogger().WithField("run_id", runID)
//	log.InfoWithFields("Logo downloaded", map[string]interface{}{
//	    "team_id": 17,
//	    "bytes":   10240,
//	})
package logger
