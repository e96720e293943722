package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/engutil/src/internal/commands"
	"github.com/maksimkurb/engutil/src/internal/config"
	"github.com/maksimkurb/engutil/src/internal/lifecycle"
	"github.com/maksimkurb/engutil/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath, "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Engine helper utilities\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [args]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  blank [text]                    Check whether text is blank (no text = absent)\n")
		fmt.Fprintf(os.Stderr, "  remove -chars <set> <text>      Remove every character of set from text\n")
		fmt.Fprintf(os.Stderr, "  replace <text> <old> <new>      Replace the first occurrence of old\n")
		fmt.Fprintf(os.Stderr, "  format [items...]               Format items as an array\n")
		fmt.Fprintf(os.Stderr, "  hex <code>                      Expand a 3-digit hex color\n")
		fmt.Fprintf(os.Stderr, "  colorize -color <hex> <text>    Wrap text in a color tag\n")
		fmt.Fprintf(os.Stderr, "  angle <from> <to>               Minimal signed angle between two angles\n")
		fmt.Fprintf(os.Stderr, "  wrap <value> <modulus>          Wrap a value keeping its fraction\n")
		fmt.Fprintf(os.Stderr, "  modf <value> <modulus>          Floating point modulus\n")
		fmt.Fprintf(os.Stderr, "  step [-n count] <value> <mod>   Step a cyclic index\n")
		fmt.Fprintf(os.Stderr, "  approx <a...> <b...>            Compare two vectors within a tolerance\n")
		fmt.Fprintf(os.Stderr, "  gate <name> <a> <b>             Evaluate a boolean gate\n")
		fmt.Fprintf(os.Stderr, "  probe <type> <method>           Check whether a type has a method\n")
		fmt.Fprintf(os.Stderr, "  client-state <code>             Name a client state code\n")
		fmt.Fprintf(os.Stderr, "  log [-color c] [-level n] [msg] Write a message through the logger\n")
		fmt.Fprintf(os.Stderr, "  quit [message]                  Terminate the host application\n")
		fmt.Fprintf(os.Stderr, "  init-config                     Write the default configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	session, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := commands.PrepareContext(ctx, cancel); err != nil {
		log.Fatalf("Failed to prepare: %v", err)
	}
	log.SetDefault(ctx.Logger)
	defer ctx.Logger.Close()

	subcommand := args[0]
	for _, cmd := range commands.All() {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			if stopper, ok := ctx.Terminator.(*lifecycle.SimulationStopper); ok && session.Err() != nil {
				_, code := stopper.Stopped()
				log.Infof("Session stopped with code %d", code)
			}

			return
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
