package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maksimkurb/engutil/src/internal/config"
	"github.com/maksimkurb/engutil/src/internal/lifecycle"
	"github.com/maksimkurb/engutil/src/internal/log"
)

func TestPrepareContext_Defaults(t *testing.T) {
	ctx := &AppContext{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")}

	if err := PrepareContext(ctx, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ctx.Config == nil || ctx.Logger == nil || ctx.Terminator == nil {
		t.Fatal("Expected config, logger and terminator to be set")
	}
	if ctx.Logger.Verbosity() != log.LevelNormal {
		t.Errorf("Expected verbosity %d, got %d", log.LevelNormal, ctx.Logger.Verbosity())
	}
	if _, ok := ctx.Terminator.(lifecycle.ProcessTerminator); !ok {
		t.Errorf("Expected ProcessTerminator, got %T", ctx.Terminator)
	}
}

func TestPrepareContext_VerboseAndInteractive(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "engutil.toml")
	content := "[app]\nmode = \"interactive\"\n"
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	sessionCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx := &AppContext{ConfigPath: configFile, Verbose: true}
	if err := PrepareContext(ctx, cancel); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ctx.Logger.Verbosity() != log.LevelDebug {
		t.Errorf("Expected debug verbosity, got %d", ctx.Logger.Verbosity())
	}

	if err := ctx.Terminator.Terminate(0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sessionCtx.Err() == nil {
		t.Error("Expected interactive terminator to cancel the session")
	}
}

func TestPrepareContext_InvalidConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "engutil.toml")
	content := "[log]\nverbosity = -1\n"
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	err := PrepareContext(&AppContext{ConfigPath: configFile}, nil)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "log.verbosity") {
		t.Errorf("Expected error to name the field, got %v", err)
	}
}

func TestInitConfigCommand(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "engutil.toml")
	ctx, _, console, _ := newTestContext()
	ctx.ConfigPath = configFile

	runCommand(t, CreateInitConfigCommand(), ctx)

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if cfg.Log != config.DefaultConfig().Log || cfg.App != config.DefaultConfig().App {
		t.Errorf("Expected default config, got %+v", cfg)
	}
	if !strings.Contains(console.Last(), "Configuration written to") {
		t.Errorf("Expected confirmation to be logged, got %q", console.Last())
	}

	cmd := CreateInitConfigCommand()
	if err := cmd.Init(nil, ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Error("Expected error when config already exists")
	}

	runCommand(t, CreateInitConfigCommand(), ctx, "-force")
}
