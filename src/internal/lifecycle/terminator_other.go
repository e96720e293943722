//go:build !unix

package lifecycle

// SignalTerminator falls back to exiting the process on platforms without SIGTERM.
type SignalTerminator struct{}

// Terminate exits the process with code.
func (SignalTerminator) Terminate(code int) error {
	exit(code)
	return nil
}
