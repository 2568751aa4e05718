package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/numval/numval-go/pkg/log"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return export(reader, format, w)
}

func export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(jsonEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

// jsonEvent flattens an event into JSON-safe fields. Unbounded results
// can carry infinities, which encoding/json rejects, so numbers are
// written in their display form.
func jsonEvent(event log.Event) map[string]any {
	m := map[string]any{
		"timestamp":  event.Timestamp.UTC().Format(timeLayout),
		"control_id": event.ControlID,
		"source":     event.Source.String(),
		"category":   event.Category.String(),
		"type":       eventType(event),
	}
	if event.Pattern != "" {
		m["pattern"] = event.Pattern
	}
	switch {
	case event.Commit != nil:
		if event.Commit.Input != "" {
			m["input"] = event.Commit.Input
		}
		if r := event.Commit.Result; r != nil {
			m["display"] = r.String
			values := make([]string, len(r.Array))
			for i, v := range r.Array {
				values[i] = formatNumber(v)
			}
			m["values"] = values
		}
		m["notified"] = event.Commit.Notified
		if event.Commit.Step != 0 {
			m["step"] = formatNumber(event.Commit.Step)
		}
	case event.StateChange != nil:
		m["entity"] = event.StateChange.Entity.String()
		m["old_state"] = event.StateChange.OldState
		m["new_state"] = event.StateChange.NewState
		if event.StateChange.Reason != "" {
			m["reason"] = event.StateChange.Reason
		}
	case event.Drag != nil:
		m["phase"] = event.Drag.Phase.String()
		m["x"] = formatNumber(event.Drag.X)
		m["y"] = formatNumber(event.Drag.Y)
		m["delta"] = formatNumber(event.Drag.Delta)
	case event.Error != nil:
		m["error"] = event.Error.Message
		m["action"] = event.Error.Action.String()
		if event.Error.Input != "" {
			m["input"] = event.Error.Input
		}
	}
	return m
}

// eventType names the event payload.
func eventType(event log.Event) string {
	switch {
	case event.Commit != nil:
		if event.Commit.Notified {
			return "commit"
		}
		return "resync"
	case event.StateChange != nil:
		return "state"
	case event.Drag != nil:
		return "drag"
	case event.Error != nil:
		return "error"
	default:
		return "unknown"
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "control_id", "source", "category", "pattern", "type", "display", "notified"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		display := ""
		notified := ""
		if event.Commit != nil {
			if event.Commit.Result != nil {
				display = event.Commit.Result.String
			}
			notified = strconv.FormatBool(event.Commit.Notified)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.ControlID,
			event.Source.String(),
			event.Category.String(),
			event.Pattern,
			eventType(event),
			display,
			notified,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}
