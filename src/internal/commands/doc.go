// Package commands implements CLI command handlers for engutil.
//
// Every helper in the utils, log and lifecycle packages is reachable from a
// subcommand, which makes the CLI a quick way to check how a helper behaves
// on a given input.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and convert them to typed values
//   - Run(): Call the helper and print its result
//   - Name(): Return command name for routing
//
// Negative numbers must follow "--" so that they are not parsed as flags.
//
// PrepareContext must run before any command. It loads the configuration and
// fills AppContext with the logger and terminator the configuration describes.
//
// # Available Commands
//
//   - blank, remove, replace, format: string helpers
//   - hex, colorize: color helpers
//   - angle, wrap, modf, step, approx: numeric and vector helpers
//   - gate: boolean gates
//   - probe: method capability probing
//   - client-state: client state names
//   - log: verbosity-gated logging
//   - quit: host termination
//   - init-config: write the default configuration
//
// # Example Usage
//
//	ctx := &commands.AppContext{ConfigPath: "engutil.toml"}
//	if err := commands.PrepareContext(ctx, cancel); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	cmd := commands.CreateWrapCommand()
//	if err := cmd.Init([]string{"--", "-0.5", "360"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
