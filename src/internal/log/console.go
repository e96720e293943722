package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Console is a write-only diagnostic sink. Each call receives one complete
// line without a trailing newline.
type Console interface {
	Write(line string)
}

// StreamConsole writes lines to an io.Writer.
type StreamConsole struct {
	w io.Writer
}

// NewStreamConsole creates a console writing to w.
func NewStreamConsole(w io.Writer) *StreamConsole {
	return &StreamConsole{w: w}
}

// Write appends a newline to line and writes it, ignoring write errors.
func (c *StreamConsole) Write(line string) {
	_, _ = io.WriteString(c.w, line+"\n")
}

// Stdout returns a console writing to standard output.
func Stdout() *StreamConsole {
	return NewStreamConsole(os.Stdout)
}

// Stderr returns a console writing to standard error.
func Stderr() *StreamConsole {
	return NewStreamConsole(os.Stderr)
}

// FileConsole appends lines to a file.
type FileConsole struct {
	mu   sync.Mutex
	file *os.File
}

// OpenFileConsole opens path for appending, creating it if needed.
func OpenFileConsole(path string) (*FileConsole, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &FileConsole{file: f}, nil
}

// Write appends line to the file. Writes after Close are dropped.
func (c *FileConsole) Write(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file == nil {
		return
	}
	_, _ = c.file.WriteString(line + "\n")
}

// Close closes the underlying file.
func (c *FileConsole) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	return err
}

// warnings receives console close failures. It bypasses every Logger since
// the failing console may belong to the default one.
var warnings Console = Stderr()

// closeOrWarn closes c and reports a failure on warnings.
func closeOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		warnings.Write(fmt.Sprintf("%s Failed to close console: %v", logPrefixes[severityWarn], err))
	}
}
