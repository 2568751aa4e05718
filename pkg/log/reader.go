package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects trace events. Empty/nil fields match every event.
type Filter struct {
	// ControlID filters by exact control ID.
	ControlID string

	// Source filters by input source.
	Source *Source

	// Category filters by event category.
	Category *Category

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time

	// Pattern filters by the control's template at the time of the event.
	Pattern string

	// Notified keeps only commits whose change callback was (true) or was
	// not (false) invoked.
	Notified *bool

	// Action keeps only errors handled with this action.
	Action *ErrorAction
}

// Matches returns true if the event satisfies every criterion.
func (f *Filter) Matches(event Event) bool {
	if f.ControlID != "" && event.ControlID != f.ControlID {
		return false
	}
	if f.Source != nil && event.Source != *f.Source {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	if f.Pattern != "" && event.Pattern != f.Pattern {
		return false
	}
	if f.Notified != nil && (event.Commit == nil || event.Commit.Notified != *f.Notified) {
		return false
	}
	if f.Action != nil && (event.Error == nil || event.Error.Action != *f.Action) {
		return false
	}
	return true
}

// Reader streams events from a trace file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens a trace file and reads every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a trace file and reads the events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
