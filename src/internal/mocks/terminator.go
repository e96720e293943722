package mocks

// MockTerminator is a Terminator that records termination requests instead
// of ending the process.
type MockTerminator struct {
	// TerminateFunc is called by Terminate if not nil
	TerminateFunc func(code int) error

	// Codes holds every exit code passed to Terminate, in order
	Codes []int

	// Track calls for verification in tests
	TerminateCalls int
}

// Terminate records code.
func (m *MockTerminator) Terminate(code int) error {
	m.TerminateCalls++
	m.Codes = append(m.Codes, code)
	if m.TerminateFunc != nil {
		return m.TerminateFunc(code)
	}
	return nil
}
