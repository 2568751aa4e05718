package log

import (
	"time"

	"github.com/numval/numval-go/pkg/number"
)

// Event is one entry of an interaction trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ControlID identifies the control (UUID).
	ControlID string `cbor:"2,keyasint"`

	// Source is the input that caused the event.
	Source Source `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Pattern is the control's template at the time of the event.
	Pattern string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Commit      *CommitEvent      `cbor:"11,keyasint,omitempty"`
	Drag        *DragEvent        `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Source identifies what drove an event.
type Source uint8

const (
	// SourceHost is a call from the host, e.g. a controlled value update.
	SourceHost Source = 0
	// SourceText is typed text committed on blur or Enter.
	SourceText Source = 1
	// SourceKeyboard is arrow-key stepping.
	SourceKeyboard Source = 2
	// SourcePointer is drag adjustment.
	SourcePointer Source = 3
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceHost:
		return "HOST"
	case SourceText:
		return "TEXT"
	case SourceKeyboard:
		return "KEYBOARD"
	case SourcePointer:
		return "POINTER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommit indicates a commit or resync of the value.
	CategoryCommit Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryDrag indicates a drag phase.
	CategoryDrag Category = 2
	// CategoryError indicates a rolled back processing failure.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommit:
		return "COMMIT"
	case CategoryState:
		return "STATE"
	case CategoryDrag:
		return "DRAG"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures controller transitions.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates which part of the controller changed state.
type StateEntity uint8

const (
	// StateEntityEditing is the Idle/Editing machine.
	StateEntityEditing StateEntity = 0
	// StateEntityDragging is the orthogonal dragging flag.
	StateEntityDragging StateEntity = 1
	// StateEntityAvailability is the enabled/read-only/disabled mode.
	StateEntityAvailability StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityEditing:
		return "EDITING"
	case StateEntityDragging:
		return "DRAGGING"
	case StateEntityAvailability:
		return "AVAILABILITY"
	default:
		return "UNKNOWN"
	}
}

// CommitEvent captures a processed value.
type CommitEvent struct {
	// Input is the raw text for text commits (empty otherwise).
	Input string `cbor:"1,keyasint,omitempty"`

	// Result is the canonical result.
	Result *number.Result `cbor:"2,keyasint"`

	// Notified is true when the change callback was invoked. Text commits
	// equivalent to the current value only resync the display.
	Notified bool `cbor:"3,keyasint,omitempty"`

	// Step is the step applied by keyboard or pointer commits.
	Step float64 `cbor:"4,keyasint,omitempty"`
}

// DragEvent captures pointer adjustment.
type DragEvent struct {
	// Phase of the drag.
	Phase DragPhase `cbor:"1,keyasint"`

	// X and Y are the pointer coordinates.
	X float64 `cbor:"2,keyasint,omitempty"`
	Y float64 `cbor:"3,keyasint,omitempty"`

	// Delta is the signed movement since the previous sample (moves only).
	Delta float64 `cbor:"4,keyasint,omitempty"`
}

// DragPhase distinguishes drag start, move and end.
type DragPhase uint8

const (
	// DragPhaseStart is pointer-down on the handle.
	DragPhaseStart DragPhase = 0
	// DragPhaseMove is a pointer move while dragging.
	DragPhaseMove DragPhase = 1
	// DragPhaseEnd is pointer-up, or the control being disabled.
	DragPhaseEnd DragPhase = 2
)

// String returns the drag phase name.
func (p DragPhase) String() string {
	switch p {
	case DragPhaseStart:
		return "START"
	case DragPhaseMove:
		return "MOVE"
	case DragPhaseEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a processing failure and how it was handled.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Input is the text that failed to process.
	Input string `cbor:"2,keyasint,omitempty"`

	// Action is what the controller did instead of committing.
	Action ErrorAction `cbor:"3,keyasint"`
}

// ErrorAction is the recovery taken after a failed commit.
type ErrorAction uint8

const (
	// ErrorActionRollback restored the pristine display text.
	ErrorActionRollback ErrorAction = 0
	// ErrorActionEmpty reported an empty value to the host.
	ErrorActionEmpty ErrorAction = 1
	// ErrorActionIgnored dropped a host update that could not be processed.
	ErrorActionIgnored ErrorAction = 2
)

// String returns the action name.
func (a ErrorAction) String() string {
	switch a {
	case ErrorActionRollback:
		return "ROLLBACK"
	case ErrorActionEmpty:
		return "EMPTY"
	case ErrorActionIgnored:
		return "IGNORED"
	default:
		return "UNKNOWN"
	}
}
