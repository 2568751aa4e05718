// Command numval processes and interactively edits numeric values through
// a template such as "{value}px" or "{x}, {y}".
//
// Usage:
//
//	numval <command> [flags]
//
// Commands:
//
//	process      Process inputs and print the results
//	interactive  Drive one control from a command prompt
//	presets      List the built-in presets
//
// Control flags (process and interactive):
//
//	-config string      Controls file (YAML)
//	-control string     Control name in the controls file
//	-preset string      Built-in preset
//	-pattern string     Template (default "{value}")
//	-min, -max float    Bounds
//	-decimal int        Fractional digits kept (default 2)
//	-step float         Arrow key and drag step (default 1)
//	-shift-step float   Step while Shift is held (default 10)
//	-axis string        Drag axis: x, y (default "x")
//	-raw                Embed template literals in the matcher unescaped
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Evaluate an expression against a unit template
//	numval process -pattern "{value}px" "10+2px"
//
//	# Process typed inputs as JSON
//	numval process -preset position -typed -format json "[10, 20]" "{x: 1, y: 2}"
//
//	# Edit a control from a controls file, tracing to a file
//	numval interactive -config controls.yaml -control padding -event-log session.nlog
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/numval/numval-go/cmd/numval/interactive"
	nvlog "github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/presets"
)

const usage = `numval - Numeric Value Interpreter

Usage:
  numval <command> [flags]

Commands:
  process      Process inputs and print the results
  interactive  Drive one control from a command prompt
  presets      List the built-in presets

Use "numval <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "process":
		runProcess(args)
	case "interactive":
		runInteractive(args)
	case "presets":
		runPresets()
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

func runProcess(args []string) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `numval process - Process inputs and print the results

Usage:
  numval process [flags] <input>...

Flags:
`)
		fs.PrintDefaults()
	}

	var opts options
	opts.register(fs)
	format := fs.String("format", formatText, "Output format (text, json, cbor)")
	typed := fs.Bool("typed", false, "Decode inputs as YAML values (numbers, [sequences], {records})")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	opts.markExplicit(fs)
	setupLogging(opts.LogLevel)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one input required")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := opts.controllerConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	failed, err := processInputs(os.Stdout, cfg, fs.Args(), *typed, *format)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runInteractive(args []string) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `numval interactive - Drive one control from a command prompt

Usage:
  numval interactive [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	var opts options
	opts.register(fs)
	eventLog := fs.String("event-log", "", "File path for interaction event logging (CBOR format, "+nvlog.Extension+")")
	initial := fs.String("value", "", "Initial value (YAML: 12, [1, 2], {x: 1}, \"10px\")")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	opts.markExplicit(fs)
	setupLogging(opts.LogLevel)

	cfg, err := opts.controllerConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *initial != "" {
		v, err := interactive.ParseValue(*initial)
		if err != nil {
			log.Fatalf("Invalid value: %v", err)
		}
		cfg.Value = v
	}
	cfg.Logger = opts.logger()

	var eventLogger *nvlog.FileLogger
	if *eventLog != "" {
		eventLogger, err = nvlog.NewFileLogger(*eventLog)
		if err != nil {
			log.Fatalf("Failed to create event logger: %v", err)
		}
		defer func() {
			log.Printf("Wrote %d events to %s", eventLogger.Count(), eventLogger.Path())
			eventLogger.Close()
		}()
		log.Printf("Event logging to: %s", *eventLog)
	}
	cfg.EventLogger = traceLogger(eventLogger, cfg.Logger)

	session, err := interactive.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create control: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := session.Run(ctx, cancel); err != nil {
		log.Printf("Error: %v", err)
	}
}

func runPresets() {
	for _, p := range presets.All() {
		fmt.Printf("%-12s %-16q %s\n", p.Name, p.Pattern, p.Description)
	}
}
