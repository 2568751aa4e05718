package log

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/numval/numval-go/pkg/number"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	original := Event{
		Timestamp: ts,
		ControlID: "7f9c2ba4-e88f-4d2b-9c1a-1c1d2e3f4a5b",
		Source:    SourceText,
		Category:  CategoryCommit,
		Pattern:   "{value}px",
		Commit: &CommitEvent{
			Input: "10+2px",
			Result: &number.Result{
				Array:  []float64{12},
				String: "12px",
				Object: map[string]float64{"value": 12},
			},
			Notified: true,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.ControlID != original.ControlID {
		t.Errorf("ControlID: got %q, want %q", decoded.ControlID, original.ControlID)
	}
	if decoded.Source != SourceText || decoded.Category != CategoryCommit {
		t.Errorf("Source/Category: got %v/%v", decoded.Source, decoded.Category)
	}
	if decoded.Pattern != original.Pattern {
		t.Errorf("Pattern: got %q, want %q", decoded.Pattern, original.Pattern)
	}
	if decoded.Commit == nil || decoded.Commit.Result == nil {
		t.Fatal("Commit payload lost")
	}
	if decoded.Commit.Input != "10+2px" || !decoded.Commit.Notified {
		t.Errorf("Commit: got %+v", decoded.Commit)
	}
	if !number.Equal(decoded.Commit.Result, original.Commit.Result) || decoded.Commit.Result.String != "12px" {
		t.Errorf("Result: got %+v", decoded.Commit.Result)
	}
}

func TestStateChangeEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		ControlID: "ctrl-1",
		Source:    SourcePointer,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityDragging,
			OldState: "IDLE",
			NewState: "DRAGGING",
			Reason:   "pointer down on handle",
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.StateChange == nil {
		t.Fatal("StateChange payload lost")
	}
	if *decoded.StateChange != *original.StateChange {
		t.Errorf("StateChange: got %+v, want %+v", decoded.StateChange, original.StateChange)
	}
	if decoded.Commit != nil || decoded.Drag != nil || decoded.Error != nil {
		t.Error("unexpected payloads after decode")
	}
}

func TestInfiniteValuesSurviveEncoding(t *testing.T) {
	original := Event{
		ControlID: "ctrl-inf",
		Category:  CategoryCommit,
		Commit: &CommitEvent{
			Result: &number.Result{
				Array:  []float64{math.Inf(1)},
				String: "Infinity",
				Object: map[string]float64{"v": math.Inf(1)},
			},
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if !math.IsInf(decoded.Commit.Result.Array[0], 1) {
		t.Errorf("got %v, want +Inf", decoded.Commit.Result.Array[0])
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ControlID: "ctrl",
		Commit: &CommitEvent{
			Result: &number.Result{
				Array:  []float64{1, 2, 3},
				String: "1 2 3",
				Object: map[string]float64{"z": 3, "a": 1, "m": 2},
			},
		},
	}

	first, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := EncodeEvent(event)
		if err != nil {
			t.Fatalf("EncodeEvent failed: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("encoding differs between runs")
		}
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for malformed CBOR")
	}
}

func TestMarshalResult(t *testing.T) {
	data, err := Marshal(&number.Result{Array: []float64{1}, String: "1", Object: map[string]float64{"v": 1}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty encoding")
	}
	// Integer keys: a map with three entries keyed 1, 2, 3.
	if data[0] != 0xa3 || data[1] != 0x01 {
		t.Errorf("unexpected header bytes % x", data[:2])
	}
}
