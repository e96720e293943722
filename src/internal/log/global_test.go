package log

import (
	"testing"

	"github.com/maksimkurb/engutil/src/internal/mocks"
)

func withDefault(t *testing.T, l *Logger) {
	t.Helper()
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefaultLogger_Verbosity(t *testing.T) {
	console := mocks.NewMockConsole()
	withDefault(t, New(console, LevelNormal))

	if Verbosity() != LevelNormal {
		t.Fatalf("Expected default verbosity %d, got %d", LevelNormal, Verbosity())
	}

	LogPlain("level two", 2)
	if console.WriteCalls != 0 {
		t.Errorf("Expected no write at verbosity 1, got %d", console.WriteCalls)
	}

	SetVerbosity(2)
	LogPlain("level two", 2)
	Log("#0f0", "green", 2)
	if console.WriteCalls != 2 {
		t.Fatalf("Expected 2 writes at verbosity 2, got %d", console.WriteCalls)
	}
	if console.Last() != "<color=#00ff00>green</color>" {
		t.Errorf("Unexpected colored line: %s", console.Last())
	}
}

func TestDefaultLogger_SetVerbose(t *testing.T) {
	withDefault(t, New(mocks.NewMockConsole(), LevelNormal))

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose after SetVerbose(true)")
	}
	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected not verbose after SetVerbose(false)")
	}
}

func TestDefaultLogger_SetConsoleAndDisable(t *testing.T) {
	withDefault(t, New(mocks.NewMockConsole(), LevelNormal))

	console := mocks.NewMockConsole()
	SetConsole(console)
	Infof("hello %s", "world")
	Warnf("careful")
	Errorf("bad")
	if console.WriteCalls != 3 {
		t.Errorf("Expected 3 writes, got %d", console.WriteCalls)
	}

	DisableLogs()
	Infof("dropped")
	if console.WriteCalls != 3 || !IsDisabled() {
		t.Error("Expected logging to be disabled")
	}
}
