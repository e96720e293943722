package commands

import (
	"strings"
	"testing"

	"github.com/maksimkurb/engutil/src/internal/log"
)

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		args      []string
		expected  []string
	}{
		{"Default marker", log.LevelNormal, nil, []string{"<color=red>-- Debug --</color>"}},
		{"Colored message", log.LevelNormal, []string{"-color", "#0af", "hello", "world"}, []string{"<color=#00aaff>hello world</color>"}},
		{"Plain message", log.LevelNormal, []string{"-plain", "hello"}, []string{"hello"}},
		{"Level above verbosity", log.LevelNormal, []string{"-level", "2", "hidden"}, nil},
		{"Level at verbosity", log.LevelDebug, []string{"-level", "2", "shown"}, []string{"<color=red>shown</color>"}},
		{"Quiet", log.LevelQuiet, []string{"hidden"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, console, _ := newTestContext()
			ctx.Logger.SetVerbosity(tt.verbosity)

			runCommand(t, CreateLogCommand(), ctx, tt.args...)

			if strings.Join(console.Lines, "\n") != strings.Join(tt.expected, "\n") {
				t.Errorf("Expected %v, got %v", tt.expected, console.Lines)
			}
		})
	}
}

func TestQuitCommand(t *testing.T) {
	ctx, _, console, terminator := newTestContext()

	runCommand(t, CreateQuitCommand(), ctx, "Fatal", "asset", "error")

	if terminator.TerminateCalls != 1 || terminator.Codes[0] != 0 {
		t.Errorf("Expected one Terminate(0), got calls=%d codes=%v", terminator.TerminateCalls, terminator.Codes)
	}
	if !strings.HasSuffix(console.Last(), "Fatal asset error") {
		t.Errorf("Expected message to be logged, got %q", console.Last())
	}
}

func TestQuitCommand_NoMessage(t *testing.T) {
	ctx, _, console, terminator := newTestContext()

	runCommand(t, CreateQuitCommand(), ctx)

	if terminator.TerminateCalls != 1 {
		t.Errorf("Expected Terminate to be called once, got %d", terminator.TerminateCalls)
	}
	if console.WriteCalls != 0 {
		t.Errorf("Expected nothing logged, got %v", console.Lines)
	}
}

func TestQuitCommand_NoTerminator(t *testing.T) {
	ctx, _, _, _ := newTestContext()
	ctx.Terminator = nil

	if err := CreateQuitCommand().Init(nil, ctx); err == nil {
		t.Error("Expected error without a terminator")
	}
}
