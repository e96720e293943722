package utils

import "testing"

func TestClientStateToString(t *testing.T) {
	tests := []struct {
		state    int
		expected string
	}{
		{0, "Uninitialized"},
		{9, "Joined"},
		{16, "ConnectedToMaster"},
		{20, "Authenticating"},
		{21, "???"},
		{-1, "???"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := ClientStateToString(tt.state); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestClientState_String(t *testing.T) {
	if Disconnected.String() != "Disconnected" {
		t.Errorf("Expected Disconnected, got %s", Disconnected.String())
	}
}
