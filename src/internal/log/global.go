package log

var std = NewStd(LevelNormal, false)

// Default returns the process-wide logger used by the package-level functions.
func Default() *Logger {
	return std
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	std = l
}

// SetVerbosity sets the verbosity of the default logger.
func SetVerbosity(v int) {
	std.SetVerbosity(v)
}

// Verbosity returns the verbosity of the default logger.
func Verbosity() int {
	return std.Verbosity()
}

// SetVerbose raises the default logger to LevelDebug, or lowers it back to LevelNormal.
func SetVerbose(v bool) {
	if v {
		std.SetVerbosity(LevelDebug)
	} else {
		std.SetVerbosity(LevelNormal)
	}
}

// IsVerbose returns true if debug messages are enabled.
func IsVerbose() bool {
	return std.Verbosity() >= LevelDebug
}

// SetConsole redirects the default logger.
func SetConsole(c Console) {
	std.SetConsole(c)
}

// DisableLogs disables all logging on the default logger.
func DisableLogs() {
	std.Disable()
}

// IsDisabled returns true if the default logger is disabled.
func IsDisabled() bool {
	return std.IsDisabled()
}

// Log writes a color-tagged message through the default logger if its verbosity is at least level.
func Log(colorName, message string, level int) {
	std.Log(colorName, message, level)
}

// LogPlain writes message through the default logger if its verbosity is at least level.
func LogPlain(message string, level int) {
	std.LogPlain(message, level)
}

// Debugf logs a debug message through the default logger.
func Debugf(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Infof logs an info message through the default logger.
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warnf logs a warning message through the default logger.
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Errorf logs an error message through the default logger.
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

// Fatalf logs an error message through the default logger and exits the program.
func Fatalf(format string, args ...interface{}) {
	std.Fatalf(format, args...)
}
