package commands

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/number"
)

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}

	var commit map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &commit); err != nil {
		t.Fatalf("line 2 is not valid JSON: %v", err)
	}
	if commit["type"] != "commit" {
		t.Errorf("expected type commit, got %v", commit["type"])
	}
	if commit["display"] != "12px" {
		t.Errorf("expected display 12px, got %v", commit["display"])
	}
	if commit["control_id"] != ctrlA {
		t.Errorf("expected control_id %s, got %v", ctrlA, commit["control_id"])
	}

	var errEvent map[string]any
	if err := json.Unmarshal([]byte(lines[4]), &errEvent); err != nil {
		t.Fatalf("line 5 is not valid JSON: %v", err)
	}
	if errEvent["action"] != "ROLLBACK" {
		t.Errorf("expected action ROLLBACK, got %v", errEvent["action"])
	}
}

func TestExportJSONLInfiniteValues(t *testing.T) {
	events := []log.Event{{
		Timestamp: baseTime,
		ControlID: ctrlA,
		Source:    log.SourceHost,
		Category:  log.CategoryCommit,
		Commit: &log.CommitEvent{
			Result:   &number.Result{Array: []float64{math.Inf(1)}, String: "Infinity", Object: map[string]float64{"value": math.Inf(1)}},
			Notified: true,
		},
	}}
	path := createTestLogFile(t, events)

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), `"values":["Infinity"]`) {
		t.Errorf("expected infinite value in display form, got %s", data)
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	outPath := filepath.Join(t.TempDir(), "out.csv")
	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records (header + 5), got %d", len(records))
	}
	if records[0][0] != "timestamp" || records[0][7] != "notified" {
		t.Errorf("unexpected header: %v", records[0])
	}

	commit := records[2]
	if commit[2] != "TEXT" || commit[3] != "COMMIT" || commit[5] != "commit" {
		t.Errorf("unexpected commit row: %v", commit)
	}
	if commit[4] != "{value}px" || commit[6] != "12px" || commit[7] != "true" {
		t.Errorf("unexpected commit row: %v", commit)
	}

	drag := records[3]
	if drag[5] != "drag" || drag[6] != "" || drag[7] != "" {
		t.Errorf("unexpected drag row: %v", drag)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out.xml"))
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
