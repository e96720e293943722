// Package log provides verbosity-gated leveled logging for engutil.
//
// A Logger carries its own verbosity and writes to an injected Console.
// A message is written only when the logger's verbosity is at least the
// level requested for the message. The package-level functions operate on
// a default logger that writes to stdout (errors to stderr) with verbosity 1.
//
// # Log Levels
//
//   - Log / LogPlain: caller-chosen level, compared against the verbosity
//   - DEBUG: shown when verbosity >= 2
//   - INFO, WARN: always shown unless the logger is disabled
//   - ERROR: shown unless disabled, routed to the error console
//
// # Example Usage
//
// Colored engine console output:
//
//	logger := log.New(log.Stdout(), 1)
//	logger.Log("f80", "spawned player", 1)  // <color=ff8800>spawned player</color>
//	logger.LogPlain("tick", 2)              // suppressed at verbosity 1
//
// Package-level default logger:
//
//	log.SetVerbosity(2)
//	log.Debugf("loaded %d prefabs", n)
//	log.Errorf("asset missing: %s", name)
//
// Loggers are not synchronised; configure them before sharing across goroutines.
package log
