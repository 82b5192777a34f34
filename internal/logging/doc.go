// Package logging provides the diagnostic logger for fyi.
//
// fyi is itself an output tool, so diagnostics are off by default: unless
// FYI_LOG_LEVEL (or an explicit level) is set, the global logger is a zap
// no-op and nothing is written. When enabled, entries go to stderr in zap's
// console format so they never mix with messages printed on stdout.
//
//	if err := logging.Initialize(""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Debug("Terminal width unavailable", zap.Int("fallback", 80))
//
// Components that take a *zap.Logger (the progress driver, for instance)
// get one from Named so their entries carry a component name.
//
// # Log Levels
//
//   - Debug: configuration resolution, render-mode decisions, width fallbacks
//   - Info: nothing at present; reserved for long-running commands
//   - Warn: recoverable problems such as an unreadable config file
//   - Error: not used; errors are returned to the command layer instead
package logging
