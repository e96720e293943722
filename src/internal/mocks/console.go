package mocks

// MockConsole is a Console that records every line written to it.
//
// It lets tests assert exactly what a logger emitted without touching
// stdout or stderr.
type MockConsole struct {
	// WriteFunc is called by Write if not nil
	WriteFunc func(line string)

	// Lines holds every line written, in order
	Lines []string

	// Track calls for verification in tests
	WriteCalls int
}

// NewMockConsole creates an empty recording console.
func NewMockConsole() *MockConsole {
	return &MockConsole{}
}

// Write records line.
func (m *MockConsole) Write(line string) {
	m.WriteCalls++
	m.Lines = append(m.Lines, line)
	if m.WriteFunc != nil {
		m.WriteFunc(line)
	}
}

// Last returns the most recent line, or "" if nothing was written.
func (m *MockConsole) Last() string {
	if len(m.Lines) == 0 {
		return ""
	}
	return m.Lines[len(m.Lines)-1]
}

// Reset forgets all recorded lines.
func (m *MockConsole) Reset() {
	m.Lines = nil
	m.WriteCalls = 0
}
