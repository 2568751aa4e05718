package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/numval/numval-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	ControlID string
	TimeStart string
	TimeEnd   string
	Source    string
	Category  string

	// Pattern keeps events recorded under this template.
	Pattern string

	// Notified keeps commits that reached the change callback; Resync keeps
	// the ones that only refreshed the display.
	Notified bool
	Resync   bool

	// Action keeps errors handled this way (rollback, empty, ignored).
	Action string
}

// RunFilter copies the events of a trace matching opts into a new trace
// and writes a summary line to w.
func RunFilter(path string, opts FilterOptions, w io.Writer) error {
	if opts.Output == "" {
		return fmt.Errorf("output file required")
	}
	filter, err := buildFilter(opts)
	if err != nil {
		return err
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	out, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer out.Close()

	total, controls, err := copyMatching(reader, filter, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Filtered %d of %d events from %d controls to %s\n", out.Count(), total, controls, out.Path())
	return nil
}

// copyMatching logs every event accepted by filter to out. It returns the
// number of events read and of distinct controls kept.
func copyMatching(reader *log.Reader, filter log.Filter, out log.Logger) (int, int, error) {
	total := 0
	seen := make(map[string]bool)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return total, len(seen), nil
		}
		if err != nil {
			return total, len(seen), fmt.Errorf("failed to read event: %w", err)
		}
		total++
		if !filter.Matches(event) {
			continue
		}
		seen[event.ControlID] = true
		out.Log(event)
	}
}

func buildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		ControlID: opts.ControlID,
		Pattern:   opts.Pattern,
	}

	var err error
	if filter.TimeStart, err = parseTime("time-start", opts.TimeStart); err != nil {
		return filter, err
	}
	if filter.TimeEnd, err = parseTime("time-end", opts.TimeEnd); err != nil {
		return filter, err
	}

	if opts.Source != "" {
		s, err := parseSource(opts.Source)
		if err != nil {
			return filter, err
		}
		filter.Source = &s
	}
	if opts.Category != "" {
		c, err := parseCategory(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}

	switch {
	case opts.Notified && opts.Resync:
		return filter, fmt.Errorf("--notified and --resync are mutually exclusive")
	case opts.Notified, opts.Resync:
		notified := opts.Notified
		filter.Notified = &notified
	}

	if opts.Action != "" {
		a, err := parseAction(opts.Action)
		if err != nil {
			return filter, err
		}
		filter.Action = &a
	}
	return filter, nil
}

func parseTime(flag, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", flag, err)
	}
	return &t, nil
}

func parseAction(s string) (log.ErrorAction, error) {
	switch strings.ToLower(s) {
	case "rollback":
		return log.ErrorActionRollback, nil
	case "empty":
		return log.ErrorActionEmpty, nil
	case "ignored":
		return log.ErrorActionIgnored, nil
	default:
		return 0, fmt.Errorf("invalid action: %s (use rollback, empty, or ignored)", s)
	}
}
