package log

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/engutil/src/internal/utils"
)

// Verbosity levels. A message is written when the logger's verbosity is at
// least the message level.
const (
	// LevelQuiet is a verbosity that suppresses Log and LogPlain output.
	LevelQuiet = 0
	// LevelNormal is the default verbosity and the default message level.
	LevelNormal = 1
	// LevelDebug enables Debugf output.
	LevelDebug = 2
)

const (
	DefaultColor   = "red"
	DefaultMessage = "-- Debug --"
)

const (
	severityDebug = iota
	severityInfo
	severityWarn
	severityError
)

var logPrefixes = map[int]string{
	severityDebug: "\033[37m[DBG]\033[0m", // White
	severityInfo:  "\033[36m[INF]\033[0m", // Cyan
	severityWarn:  "\033[33m[WRN]\033[0m", // Yellow
	severityError: "\033[31m[ERR]\033[0m", // Red
}

var exit = os.Exit

// Logger writes messages to a Console when its verbosity is at least the
// level requested by the message. It is meant to be used from a single
// goroutine. The zero Logger discards everything; use New or NewStd.
type Logger struct {
	verbosity int
	out       Console
	errOut    Console
	disabled  bool

	defaultColor string
}

// New creates a logger writing every message to console.
func New(console Console, verbosity int) *Logger {
	return &Logger{
		verbosity: verbosity,
		out:       console,
		errOut:    console,

		defaultColor: DefaultColor,
	}
}

// NewStd creates a logger writing to stdout, with errors on stderr.
// forceStdErr sends everything to stderr.
func NewStd(verbosity int, forceStdErr bool) *Logger {
	l := New(Stdout(), verbosity)
	l.errOut = Stderr()
	if forceStdErr {
		l.out = l.errOut
	}
	return l
}

// SetVerbosity sets the verbosity threshold.
func (l *Logger) SetVerbosity(v int) {
	l.verbosity = v
}

// Verbosity returns the verbosity threshold.
func (l *Logger) Verbosity() int {
	return l.verbosity
}

// SetDefaultColor sets the color used by LogDefault.
func (l *Logger) SetDefaultColor(colorName string) {
	l.defaultColor = colorName
}

// SetConsole replaces both the regular and the error console.
func (l *Logger) SetConsole(c Console) {
	l.out = c
	l.errOut = c
}

// SetErrorConsole replaces the console used for error-level messages.
func (l *Logger) SetErrorConsole(c Console) {
	l.errOut = c
}

// Disable suppresses all output.
func (l *Logger) Disable() {
	l.disabled = true
}

// IsDisabled returns true if output is suppressed.
func (l *Logger) IsDisabled() bool {
	return l.disabled
}

// Enabled reports whether a message of the given level would be written.
func (l *Logger) Enabled(level int) bool {
	return !l.disabled && l.verbosity >= level
}

// Log writes message wrapped in a color tag if the verbosity is at least
// level. Shorthand hex colors such as "f80" are expanded first.
func (l *Logger) Log(colorName, message string, level int) {
	if !l.Enabled(level) {
		return
	}
	write(l.out, utils.ColorTag(utils.ExpandHexShorthand(colorName), message))
}

// LogPlain writes message as is if the verbosity is at least level.
func (l *Logger) LogPlain(message string, level int) {
	if !l.Enabled(level) {
		return
	}
	write(l.out, message)
}

// LogDefault writes the default debug marker at LevelNormal.
func (l *Logger) LogDefault() {
	l.Log(l.defaultColor, DefaultMessage, LevelNormal)
}

// Debugf logs a debug message if the verbosity is at least LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.verbosity >= LevelDebug {
		l.logMessage(severityDebug, format, args...)
	}
}

// Infof logs an info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logMessage(severityInfo, format, args...)
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logMessage(severityWarn, format, args...)
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logMessage(severityError, format, args...)
}

// Fatalf logs an error message and exits the program.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logMessage(severityError, format, args...)
	exit(1)
}

// Close closes any console that holds an open resource.
func (l *Logger) Close() {
	if c, ok := l.out.(io.Closer); ok {
		closeOrWarn(c)
	}
	if l.errOut != l.out {
		if c, ok := l.errOut.(io.Closer); ok {
			closeOrWarn(c)
		}
	}
}

// logMessage formats and writes a message with the prefix for severity.
func (l *Logger) logMessage(severity int, format string, args ...interface{}) {
	if l.disabled {
		return
	}
	line := logPrefixes[severity] + " " + fmt.Sprintf(format, args...)

	if severity == severityError {
		write(l.errOut, line)
	} else {
		write(l.out, line)
	}
}

func write(c Console, line string) {
	if c != nil {
		c.Write(line)
	}
}
