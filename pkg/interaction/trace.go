package interaction

import (
	"time"

	"github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/number"
)

// emit fills the common fields and sends event to the event logger.
func (c *Controller) emit(event log.Event) {
	if c.eventLogger == nil {
		return
	}
	event.Timestamp = time.Now()
	event.ControlID = c.id
	event.Pattern = c.pattern.Template()
	c.eventLogger.Log(event)
}

func (c *Controller) traceCommit(src log.Source, input string, r *number.Result, notified bool, step float64) {
	c.emit(log.Event{
		Source:   src,
		Category: log.CategoryCommit,
		Commit: &log.CommitEvent{
			Input:    input,
			Result:   r.Clone(),
			Notified: notified,
			Step:     step,
		},
	})
}

func (c *Controller) traceState(entity log.StateEntity, oldState, newState, reason string) {
	c.emit(log.Event{
		Source:   log.SourceHost,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   entity,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

func (c *Controller) traceDrag(d log.DragEvent) {
	c.emit(log.Event{
		Source:   log.SourcePointer,
		Category: log.CategoryDrag,
		Drag:     &d,
	})
}

func (c *Controller) traceError(src log.Source, msg, input string, action log.ErrorAction) {
	c.emit(log.Event{
		Source:   src,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Message: msg,
			Input:   input,
			Action:  action,
		},
	})
}

func (c *Controller) traceAvailability() {
	c.emit(log.Event{
		Source:   log.SourceHost,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityAvailability,
			NewState: availability(c.disabled, c.readOnly),
		},
	})
}

func availability(disabled, readOnly bool) string {
	switch {
	case disabled:
		return "DISABLED"
	case readOnly:
		return "READ_ONLY"
	default:
		return "ENABLED"
	}
}
