package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/numval/numval-go/pkg/number"
)

func captureSlog(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewSlogAdapter(logger).Log(event)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}
	return record
}

func TestSlogAdapterCommit(t *testing.T) {
	record := captureSlog(t, Event{
		Timestamp: time.Now(),
		ControlID: "ctrl-1",
		Source:    SourceKeyboard,
		Category:  CategoryCommit,
		Pattern:   "{value}px",
		Commit: &CommitEvent{
			Result:   &number.Result{Array: []float64{55}, String: "55px", Object: map[string]float64{"value": 55}},
			Notified: true,
			Step:     5,
		},
	})

	want := map[string]any{
		"msg":        "interaction",
		"level":      "DEBUG",
		"control_id": "ctrl-1",
		"source":     "KEYBOARD",
		"category":   "COMMIT",
		"pattern":    "{value}px",
		"display":    "55px",
		"notified":   true,
		"step":       5.0,
	}
	for k, v := range want {
		if record[k] != v {
			t.Errorf("%s = %v, want %v", k, record[k], v)
		}
	}
	if _, ok := record["input"]; ok {
		t.Error("input should be omitted for keyboard commits")
	}
}

func TestSlogAdapterError(t *testing.T) {
	record := captureSlog(t, Event{
		ControlID: "ctrl-2",
		Source:    SourceText,
		Category:  CategoryError,
		Error:     &ErrorEventData{Message: "pattern mismatch", Input: "abc", Action: ErrorActionRollback},
	})

	if record["error_msg"] != "pattern mismatch" {
		t.Errorf("error_msg = %v", record["error_msg"])
	}
	if record["action"] != "ROLLBACK" {
		t.Errorf("action = %v", record["action"])
	}
	if record["input"] != "abc" {
		t.Errorf("input = %v", record["input"])
	}
}

func TestSlogAdapterDragAndState(t *testing.T) {
	record := captureSlog(t, Event{
		ControlID: "ctrl-3",
		Source:    SourcePointer,
		Category:  CategoryDrag,
		Drag:      &DragEvent{Phase: DragPhaseMove, X: 4, Y: 2, Delta: -3},
	})
	if record["phase"] != "MOVE" || record["delta"] != -3.0 {
		t.Errorf("drag attrs = %v", record)
	}

	record = captureSlog(t, Event{
		ControlID:   "ctrl-3",
		Category:    CategoryState,
		StateChange: &StateChangeEvent{Entity: StateEntityEditing, OldState: "IDLE", NewState: "EDITING"},
	})
	if record["entity"] != "EDITING" || record["new_state"] != "EDITING" {
		t.Errorf("state attrs = %v", record)
	}
	if _, ok := record["reason"]; ok {
		t.Error("empty reason should be omitted")
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewSlogAdapter(logger).Log(Event{ControlID: "quiet"})

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
