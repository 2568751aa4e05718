package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/number"
)

const (
	ctrlA = "aaaaaaaa-1111-4111-8111-111111111111"
	ctrlB = "bbbbbbbb-2222-4222-8222-222222222222"
)

var baseTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.nlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sampleEvents is a short session: a text commit on control A, a drag on
// control B and a rolled back entry on control A.
func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: baseTime,
			ControlID: ctrlA,
			Source:    log.SourceText,
			Category:  log.CategoryState,
			Pattern:   "{value}px",
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityEditing,
				OldState: "IDLE",
				NewState: "EDITING",
			},
		},
		{
			Timestamp: baseTime.Add(time.Second),
			ControlID: ctrlA,
			Source:    log.SourceText,
			Category:  log.CategoryCommit,
			Pattern:   "{value}px",
			Commit: &log.CommitEvent{
				Input:    "10+2",
				Result:   &number.Result{Array: []float64{12}, String: "12px", Object: map[string]float64{"value": 12}},
				Notified: true,
			},
		},
		{
			Timestamp: baseTime.Add(2 * time.Second),
			ControlID: ctrlB,
			Source:    log.SourcePointer,
			Category:  log.CategoryDrag,
			Drag:      &log.DragEvent{Phase: log.DragPhaseStart, X: 100, Y: 40},
		},
		{
			Timestamp: baseTime.Add(3 * time.Second),
			ControlID: ctrlB,
			Source:    log.SourcePointer,
			Category:  log.CategoryCommit,
			Commit: &log.CommitEvent{
				Result:   &number.Result{Array: []float64{3}, String: "3", Object: map[string]float64{"value": 3}},
				Notified: true,
				Step:     1,
			},
		},
		{
			Timestamp: baseTime.Add(4 * time.Second),
			ControlID: ctrlA,
			Source:    log.SourceText,
			Category:  log.CategoryError,
			Pattern:   "{value}px",
			Error: &log.ErrorEventData{
				Message: "evaluate: unbalanced parentheses",
				Input:   "(1",
				Action:  log.ErrorActionRollback,
			},
		},
	}
}
