// Package commands implements the numval-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/number"
	"github.com/numval/numval-go/pkg/value"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	ControlID string
	Source    *log.Source
	Category  *log.Category
}

// matches reports whether the event passes the filter. ControlID matches
// on prefix so the short IDs printed by view can be used.
func (f ViewFilter) matches(e log.Event) bool {
	if f.ControlID != "" && !strings.HasPrefix(e.ControlID, f.ControlID) {
		return false
	}
	if f.Source != nil && e.Source != *f.Source {
		return false
	}
	if f.Category != nil && e.Category != *f.Category {
		return false
	}
	return true
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [ctrl:id] SOURCE Type
	ts := event.Timestamp.UTC().Format(timeLayout)
	ctrlID := shortenControlID(event.ControlID)

	var typeLabel string
	switch {
	case event.Commit != nil:
		typeLabel = "Commit"
		if !event.Commit.Notified {
			typeLabel = "Resync"
		}
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Drag != nil:
		typeLabel = "Drag " + event.Drag.Phase.String()
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [ctrl:%s] %-8s %s\n", ts, ctrlID, event.Source.String(), typeLabel)
	if event.Pattern != "" {
		fmt.Fprintf(w, "  Pattern: %q\n", event.Pattern)
	}

	switch {
	case event.Commit != nil:
		formatCommitDetails(w, event.Commit)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Drag != nil:
		formatDragDetails(w, event.Drag)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenControlID returns the first 8 characters of the control ID.
func shortenControlID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatCommitDetails writes commit-specific details.
func formatCommitDetails(w io.Writer, c *log.CommitEvent) {
	if c.Input != "" {
		fmt.Fprintf(w, "  Input: %q\n", c.Input)
	}
	if c.Step != 0 {
		fmt.Fprintf(w, "  Step: %s\n", formatNumber(c.Step))
	}
	formatResult(w, c.Result)
}

func formatResult(w io.Writer, r *number.Result) {
	if r == nil {
		fmt.Fprintln(w, "  Value: <empty>")
		return
	}
	fmt.Fprintf(w, "  Display: %q\n", r.String)
	parts := make([]string, len(r.Array))
	for i, v := range r.Array {
		parts[i] = formatNumber(v)
	}
	fmt.Fprintf(w, "  Values: [%s]\n", strings.Join(parts, ", "))
}

func formatNumber(f float64) string {
	return value.FormatNumber(f)
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatDragDetails writes drag details.
func formatDragDetails(w io.Writer, d *log.DragEvent) {
	if d.Phase == log.DragPhaseEnd {
		return
	}
	fmt.Fprintf(w, "  Position: (%s, %s)\n", formatNumber(d.X), formatNumber(d.Y))
	if d.Phase == log.DragPhaseMove {
		fmt.Fprintf(w, "  Delta: %s\n", formatNumber(d.Delta))
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Input != "" {
		fmt.Fprintf(w, "  Input: %q\n", err.Input)
	}
	fmt.Fprintf(w, "  Action: %s\n", err.Action.String())
}

// ParseSourceFlag parses a source string from command-line flag (case-insensitive).
func ParseSourceFlag(s string) (log.Source, error) {
	return parseSource(s)
}

// parseSource parses a source string (case-insensitive).
func parseSource(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "host":
		return log.SourceHost, nil
	case "text":
		return log.SourceText, nil
	case "keyboard":
		return log.SourceKeyboard, nil
	case "pointer":
		return log.SourcePointer, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (must be host, text, keyboard, or pointer)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "commit":
		return log.CategoryCommit, nil
	case "state":
		return log.CategoryState, nil
	case "drag":
		return log.CategoryDrag, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be commit, state, drag, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if !filter.matches(event) {
			continue
		}
		formatEvent(output, event)
	}

	return nil
}
