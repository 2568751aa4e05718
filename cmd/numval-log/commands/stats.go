package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/numval/numval-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsBySource   map[log.Source]int
	EventsByCategory map[log.Category]int
	Controls         map[string]*ControlStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// ControlStats holds statistics for a single control.
type ControlStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Pattern   string
	Commits   int
	Notified  int
	Drags     int
	Errors    int
	LastValue string
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsBySource:   make(map[log.Source]int),
		EventsByCategory: make(map[log.Category]int),
		Controls:         make(map[string]*ControlStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsBySource[event.Source]++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ctrl, ok := stats.Controls[event.ControlID]
		if !ok {
			ctrl = &ControlStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Controls[event.ControlID] = ctrl
		}
		ctrl.Events++
		if event.Timestamp.After(ctrl.LastSeen) {
			ctrl.LastSeen = event.Timestamp
		}
		if event.Pattern != "" {
			ctrl.Pattern = event.Pattern
		}

		switch {
		case event.Commit != nil:
			ctrl.Commits++
			if event.Commit.Notified {
				ctrl.Notified++
			}
			if event.Commit.Result != nil {
				ctrl.LastValue = event.Commit.Result.String
			}
		case event.Drag != nil:
			if event.Drag.Phase == log.DragPhaseStart {
				ctrl.Drags++
			}
		case event.Error != nil:
			ctrl.Errors++
			stats.Errors++
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Interaction Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Source:")
	for _, src := range []log.Source{log.SourceHost, log.SourceText, log.SourceKeyboard, log.SourcePointer} {
		if count := stats.EventsBySource[src]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", src.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCommit, log.CategoryState, log.CategoryDrag, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Controls: %d\n", len(stats.Controls))
	if len(stats.Controls) > 0 {
		type ctrlInfo struct {
			id    string
			stats *ControlStats
		}
		ctrls := make([]ctrlInfo, 0, len(stats.Controls))
		for id, cs := range stats.Controls {
			ctrls = append(ctrls, ctrlInfo{id, cs})
		}
		sort.Slice(ctrls, func(i, j int) bool {
			return ctrls[i].stats.FirstSeen.Before(ctrls[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, c := range ctrls {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenControlID(c.id), c.stats.Events, duration)
			if c.stats.Pattern != "" {
				fmt.Fprintf(w, "           Pattern: %q\n", c.stats.Pattern)
			}
			fmt.Fprintf(w, "           Commits: %d (%d notified)\n", c.stats.Commits, c.stats.Notified)
			if c.stats.Drags > 0 {
				fmt.Fprintf(w, "           Drags: %d\n", c.stats.Drags)
			}
			if c.stats.Errors > 0 {
				fmt.Fprintf(w, "           Errors: %d\n", c.stats.Errors)
			}
			if c.stats.LastValue != "" {
				fmt.Fprintf(w, "           Last value: %q\n", c.stats.LastValue)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
