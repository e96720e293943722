package lifecycle

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/maksimkurb/engutil/src/internal/errors"
)

// Termination modes, as used by the app.mode config option.
const (
	ModeProduction  = "production"
	ModeSignal      = "signal"
	ModeInteractive = "interactive"
)

var exit = os.Exit

// Terminator ends the host application.
type Terminator interface {
	Terminate(code int) error
}

// ProcessTerminator exits the process immediately.
type ProcessTerminator struct{}

// Terminate exits the process with code.
func (ProcessTerminator) Terminate(code int) error {
	exit(code)
	return nil
}

// SimulationStopper stops an interactive session by cancelling its context.
// The process keeps running.
type SimulationStopper struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	code    int
}

// NewSimulationStopper creates a stopper that calls cancel on Terminate.
// cancel may be nil.
func NewSimulationStopper(cancel context.CancelFunc) *SimulationStopper {
	return &SimulationStopper{cancel: cancel}
}

// Terminate records code and cancels the session. Repeated calls keep the first code.
func (s *SimulationStopper) Terminate(code int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}
	s.stopped = true
	s.code = code
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Stopped reports whether Terminate was called and with which code.
func (s *SimulationStopper) Stopped() (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped, s.code
}

// IsValidMode reports whether mode names a known termination mode.
func IsValidMode(mode string) bool {
	switch strings.ToLower(mode) {
	case ModeProduction, ModeSignal, ModeInteractive:
		return true
	}
	return false
}

// FromMode returns the Terminator for mode. cancel is only used by the
// interactive mode.
func FromMode(mode string, cancel context.CancelFunc) (Terminator, error) {
	switch strings.ToLower(mode) {
	case ModeProduction:
		return ProcessTerminator{}, nil
	case ModeSignal:
		return SignalTerminator{}, nil
	case ModeInteractive:
		return NewSimulationStopper(cancel), nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown termination mode %q", mode), nil)
	}
}
