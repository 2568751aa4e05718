// Command numval-log views and analyzes interaction trace files.
//
// Trace files are written by numval interactive with the -event-log flag,
// or by any host that attaches a log.FileLogger to a controller.
//
// Usage:
//
//	numval-log <command> [flags] <file.nlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	numval-log view session.nlog
//
//	# View only pointer-driven events
//	numval-log view --source pointer session.nlog
//
//	# Export to CSV
//	numval-log export --format csv -o session.csv session.nlog
//
//	# Keep only commits of one control
//	numval-log filter --control-id 5f1c2a9e-... --category commit -o commits.nlog session.nlog
//
//	# Keep only text entries that were rolled back
//	numval-log filter --action rollback -o rollbacks.nlog session.nlog
//
//	# Show statistics
//	numval-log stats session.nlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/numval/numval-go/cmd/numval-log/commands"
)

const usage = `numval-log - Interaction Trace Analyzer

Usage:
  numval-log <command> [flags] <file.nlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "numval-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `numval-log view - View trace file in human-readable format

Usage:
  numval-log view [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	source := fs.String("source", "", "Filter by source (host, text, keyboard, pointer)")
	category := fs.String("category", "", "Filter by category (commit, state, drag, error)")
	controlID := fs.String("control-id", "", "Filter by control ID (prefix match)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{ControlID: *controlID}

	if *source != "" {
		s, err := commands.ParseSourceFlag(*source)
		if err != nil {
			fail(err)
		}
		filter.Source = &s
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `numval-log export - Export trace file to JSON or CSV format

Usage:
  numval-log export [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `numval-log filter - Filter trace file and write to new file

Usage:
  numval-log filter [flags] -o <output.nlog> <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	var opts commands.FilterOptions
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")
	fs.StringVar(&opts.ControlID, "control-id", "", "Filter by control ID")
	fs.StringVar(&opts.Source, "source", "", "Filter by source (host, text, keyboard, pointer)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (commit, state, drag, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter events at or after this time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter events before this time (RFC3339)")
	fs.StringVar(&opts.Pattern, "pattern", "", "Filter by template (exact)")
	fs.BoolVar(&opts.Notified, "notified", false, "Keep only commits that called OnChange")
	fs.BoolVar(&opts.Resync, "resync", false, "Keep only commits that only resynced the display")
	fs.StringVar(&opts.Action, "action", "", "Filter errors by action (rollback, empty, ignored)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if opts.Output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file required (-o)")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunFilter(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `numval-log stats - Show statistics about the trace file

Usage:
  numval-log stats <file.nlog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
