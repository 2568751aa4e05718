package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as one structured record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("control_id", event.ControlID),
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Pattern != "" {
		attrs = append(attrs, slog.String("pattern", event.Pattern))
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Commit != nil:
		if event.Commit.Input != "" {
			attrs = append(attrs, slog.String("input", event.Commit.Input))
		}
		if event.Commit.Result != nil {
			attrs = append(attrs,
				slog.String("display", event.Commit.Result.String),
				slog.Any("values", event.Commit.Result.Array),
			)
		}
		attrs = append(attrs, slog.Bool("notified", event.Commit.Notified))
		if event.Commit.Step != 0 {
			attrs = append(attrs, slog.Float64("step", event.Commit.Step))
		}
	case event.Drag != nil:
		attrs = append(attrs,
			slog.String("phase", event.Drag.Phase.String()),
			slog.Float64("x", event.Drag.X),
			slog.Float64("y", event.Drag.Y),
		)
		if event.Drag.Phase == DragPhaseMove {
			attrs = append(attrs, slog.Float64("delta", event.Drag.Delta))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("action", event.Error.Action.String()),
		)
		if event.Error.Input != "" {
			attrs = append(attrs, slog.String("input", event.Error.Input))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "interaction", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
