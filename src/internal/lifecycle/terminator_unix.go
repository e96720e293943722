//go:build unix

package lifecycle

import (
	"golang.org/x/sys/unix"

	"github.com/maksimkurb/engutil/src/internal/errors"
)

var kill = unix.Kill

// SignalTerminator asks the current process to shut down with SIGTERM.
// The exit code is left to the signal handler.
type SignalTerminator struct{}

// Terminate sends SIGTERM to the current process. code is ignored.
func (SignalTerminator) Terminate(code int) error {
	if err := kill(unix.Getpid(), unix.SIGTERM); err != nil {
		return errors.NewTerminateError("failed to send SIGTERM", err)
	}
	return nil
}
