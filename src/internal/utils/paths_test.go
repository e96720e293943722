package utils

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolvePath_AlreadyAbsolute(t *testing.T) {
	var absolutePath string
	if runtime.GOOS == "windows" {
		absolutePath = "C:\\logs\\engutil.log"
	} else {
		absolutePath = "/var/log/engutil.log"
	}

	if got := ResolvePath(absolutePath, "/base/dir"); got != absolutePath {
		t.Errorf("Expected %s, got %s", absolutePath, got)
	}
}

func TestResolvePath_Relative(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		baseDir  string
		expected string
	}{
		{"Plain", "logs/engutil.log", "/etc/engutil", "/etc/engutil/logs/engutil.log"},
		{"Dot", "./engutil.log", "/etc/engutil", "/etc/engutil/engutil.log"},
		{"Parent", "../engutil.log", "/etc/engutil", "/etc/engutil.log"},
		{"Empty base", "engutil.log", "", "engutil.log"},
		{"Empty path", "", "/etc/engutil", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := filepath.FromSlash(tt.expected)
			if got := ResolvePath(tt.path, filepath.FromSlash(tt.baseDir)); got != expected {
				t.Errorf("Expected %s, got %s", expected, got)
			}
		})
	}
}
