// Package interaction drives a numeric text control.
//
// A Controller owns the committed value of one control and turns focus,
// typing, arrow keys and pointer drags into commits. Every commit runs the
// value through number.ProcessPattern, so the control always holds a
// canonical number.Result.
//
// # States
//
// The controller is either Idle or Editing. Dragging is an orthogonal flag:
//
//	Idle --Focus--> Editing --Blur/Enter--> Idle
//	                   |
//	                   +--Escape--> Idle (display rolled back)
//
// Typed text is buffered while Editing and only processed on Blur or Enter.
// A text commit that yields a result equal to the committed one (see
// number.Equal) resynchronizes the display without calling OnChange, so
// typing "1+1" over a committed 2 shows "2" and notifies nobody. A failed
// commit calls OnEmpty for an empty buffer and otherwise restores the text
// shown when editing began.
//
// Arrow keys and pointer moves bypass the buffer and always commit,
// adding the current step to each value. The step depends on the modifier
// keys held on the shared Surface:
//
//	Shift       -> ShiftStep
//	Alt or Meta -> 1
//	otherwise   -> Step
//
// # Host Integration
//
// The host supplies a Platform for focus, selection, pointer lock and
// deferred work, and a Surface that broadcasts modifier keys and pointer-up
// events to every control. Hub is the Surface implementation for hosts
// that route raw key events themselves:
//
//	hub := interaction.NewHub()
//	ctrl, err := interaction.New(interaction.Config{
//	    Pattern:  "{value}px",
//	    Value:    value.FromNumber(12),
//	    Surface:  hub,
//	    OnChange: func(v value.Value, r *number.Result) { ... },
//	})
//
//	hub.KeyDown(interaction.ModifierShift)
//	ctrl.KeyDown(interaction.KeyArrowUp) // +10
//
// Controller methods must be called from a single goroutine. Hub is safe
// for concurrent use.
package interaction
