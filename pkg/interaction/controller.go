package interaction

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/number"
	"github.com/numval/numval-go/pkg/pattern"
	"github.com/numval/numval-go/pkg/value"
)

// Default step sizes.
const (
	DefaultStep      = 1
	DefaultShiftStep = 10
)

// Configuration errors.
var (
	ErrInvalidAxis = errors.New("invalid axis")
)

// State is the editing state of a controller.
type State uint8

const (
	// StateIdle shows the committed value.
	StateIdle State = iota
	// StateEditing buffers typed text until Blur or Enter.
	StateEditing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateEditing:
		return "EDITING"
	default:
		return "UNKNOWN"
	}
}

// Key is a non-modifier key handled by the controller.
type Key uint8

const (
	KeyEnter Key = iota + 1
	KeyEscape
	KeyArrowUp
	KeyArrowDown
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	default:
		return "Unknown"
	}
}

// Axis selects the pointer coordinate used for dragging.
type Axis uint8

const (
	// AxisX increases the value when the pointer moves right.
	AxisX Axis = iota
	// AxisY increases the value when the pointer moves up.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis parses "x" or "y". The empty string is AxisX.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return AxisX, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// Config configures a Controller.
type Config struct {
	// Pattern is the template, e.g. "{value}px". Required.
	Pattern string

	// RawLiterals embeds template literals in the matcher unescaped.
	RawLiterals bool

	// Constraints bound and round every value.
	// If nil, constraint.Default() is used.
	Constraints *constraint.Constraints

	// Step is the increment for arrow keys and drag pixels.
	// If zero, DefaultStep is used.
	Step float64

	// ShiftStep is the increment while Shift is held.
	// If zero, DefaultShiftStep is used.
	ShiftStep float64

	// Axis selects the drag direction.
	Axis Axis

	// Value is the initial external value. Its shape decides the shape of
	// the values passed to OnChange.
	Value value.Value

	// Disabled suppresses every interaction.
	Disabled bool

	// ReadOnly allows focus and typing but never commits.
	ReadOnly bool

	// Platform performs focus, selection and pointer lock.
	// If nil, NoopPlatform is used.
	Platform Platform

	// Surface provides modifier keys and pointer-up events (optional).
	Surface Surface

	// OnChange is called with each committed value.
	OnChange func(v value.Value, detail *number.Result)

	// OnEmpty is called when an empty buffer is committed.
	OnEmpty func()

	// OnDragChange is called when dragging starts or stops.
	OnDragChange func(dragging bool)

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives the interaction trace (optional).
	EventLogger log.Logger
}

// Controller is the state machine behind one numeric control.
type Controller struct {
	id string

	pattern     *pattern.Pattern
	rawLiterals bool
	constraints constraint.Constraints
	step        float64
	shiftStep   float64
	axis        Axis

	// external is the last value supplied by the host.
	external  value.Value
	committed *number.Result

	state    State
	focused  bool
	display  string
	pristine string

	dragging bool
	anchor   float64
	// refocus is set when the control had focus at pointer-down.
	refocus bool

	mods     Modifiers
	disabled bool
	readOnly bool
	closed   bool

	platform      Platform
	surface       Surface
	cancelSurface func()

	onChange     func(value.Value, *number.Result)
	onEmpty      func()
	onDragChange func(bool)

	logger      *slog.Logger
	eventLogger log.Logger
}

// New creates a controller. It fails if the pattern does not compile or
// the constraints are invalid. An initial value that cannot be processed
// leaves the control empty.
func New(cfg Config) (*Controller, error) {
	var opts []pattern.Option
	if cfg.RawLiterals {
		opts = append(opts, pattern.WithRawLiterals())
	}
	p, err := pattern.Compile(cfg.Pattern, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}

	cons := constraint.Default()
	if cfg.Constraints != nil {
		cons = *cfg.Constraints
	}
	if err := cons.Validate(); err != nil {
		return nil, err
	}

	platform := cfg.Platform
	if platform == nil {
		platform = NoopPlatform{}
	}

	c := &Controller{
		id:           uuid.NewString(),
		pattern:      p,
		rawLiterals:  cfg.RawLiterals,
		constraints:  cons,
		axis:         cfg.Axis,
		external:     cfg.Value,
		disabled:     cfg.Disabled,
		readOnly:     cfg.ReadOnly,
		platform:     platform,
		surface:      cfg.Surface,
		onChange:     cfg.OnChange,
		onEmpty:      cfg.OnEmpty,
		onDragChange: cfg.OnDragChange,
		logger:       cfg.Logger,
		eventLogger:  cfg.EventLogger,
	}
	c.SetStep(cfg.Step, cfg.ShiftStep)

	c.committed = c.tryProcess(cfg.Value)
	c.display = c.committedText()
	c.pristine = c.display

	if !c.disabled {
		c.subscribe()
	}

	c.debugLog("controller created",
		"pattern", p.Template(),
		"display", c.display,
		"disabled", c.disabled,
		"readOnly", c.readOnly)

	return c, nil
}

// ControlID returns the controller's unique ID.
func (c *Controller) ControlID() string { return c.id }

// State returns the editing state.
func (c *Controller) State() State { return c.state }

// Dragging returns true while a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Focused returns true while the control has focus.
func (c *Controller) Focused() bool { return c.focused }

// Disabled returns true if the control is disabled.
func (c *Controller) Disabled() bool { return c.disabled }

// ReadOnly returns true if the control is read-only.
func (c *Controller) ReadOnly() bool { return c.readOnly }

// Display returns the text currently shown.
func (c *Controller) Display() string { return c.display }

// Pattern returns the compiled pattern.
func (c *Controller) Pattern() *pattern.Pattern { return c.pattern }

// Result returns a copy of the committed result, or nil if the control is
// empty.
func (c *Controller) Result() *number.Result { return c.committed.Clone() }

// Modifiers returns the modifier keys last reported by the surface.
func (c *Controller) Modifiers() Modifiers { return c.mods }

// CurrentStep returns the increment for the held modifiers.
func (c *Controller) CurrentStep() float64 {
	switch {
	case c.mods.Shift:
		return c.shiftStep
	case c.mods.Meta, c.mods.Alt:
		return 1
	default:
		return c.step
	}
}

// Focus enters Editing and selects the text.
func (c *Controller) Focus() {
	if c.inactive() {
		return
	}
	c.focused = true
	c.beginEditing("focus")
	c.platform.SelectAll()
}

// Input replaces the buffered text. Nothing is processed until the next
// Blur or Enter.
func (c *Controller) Input(text string) {
	if c.inactive() || !c.focused {
		return
	}
	if c.state == StateIdle {
		c.beginEditing("typing")
	}
	c.display = text
}

// Blur commits the buffer and leaves Editing.
func (c *Controller) Blur() {
	if c.inactive() {
		return
	}
	c.focused = false
	if c.state == StateEditing {
		c.commitText("blur")
	}
}

// KeyDown handles a key press. Enter and Escape act on the edit buffer.
// Arrow keys step the committed value whether or not the control has focus.
func (c *Controller) KeyDown(k Key) {
	if c.inactive() {
		return
	}
	switch k {
	case KeyEnter:
		if c.state == StateEditing {
			c.commitText("enter")
		}
	case KeyEscape:
		if c.state == StateEditing {
			c.display = c.pristine
			c.setState(StateIdle, "escape")
		}
	case KeyArrowUp:
		c.stepBy(log.SourceKeyboard, c.CurrentStep())
	case KeyArrowDown:
		c.stepBy(log.SourceKeyboard, -c.CurrentStep())
	}
}

// ModifiersChanged implements Listener.
func (c *Controller) ModifiersChanged(m Modifiers) {
	c.mods = m
}

// SetValue replaces the committed value from the host without calling
// OnChange. The zero Value empties the control. A value that cannot be
// processed is ignored. Text being edited is left alone.
func (c *Controller) SetValue(v value.Value) {
	c.external = v
	if v.IsZero() {
		c.committed = nil
	} else {
		r := c.tryProcess(v)
		if r == nil {
			c.traceError(log.SourceHost, "value cannot be processed", v.String(), log.ErrorActionIgnored)
			return
		}
		c.committed = r
	}
	if c.state != StateEditing {
		c.display = c.committedText()
		c.pristine = c.display
	}
	c.traceCommit(log.SourceHost, "", c.committed, false, 0)
}

// SetPattern recompiles the template and reformats the committed values
// positionally.
func (c *Controller) SetPattern(template string) error {
	var opts []pattern.Option
	if c.rawLiterals {
		opts = append(opts, pattern.WithRawLiterals())
	}
	p, err := pattern.Compile(template, opts...)
	if err != nil {
		return fmt.Errorf("compile pattern: %w", err)
	}
	c.pattern = p
	c.reprocess()
	return nil
}

// SetConstraints replaces the constraints and reapplies them to the
// committed values.
func (c *Controller) SetConstraints(cons constraint.Constraints) error {
	if err := cons.Validate(); err != nil {
		return err
	}
	c.constraints = cons
	c.reprocess()
	return nil
}

// SetStep sets the normal and shift steps. Zero selects the default.
func (c *Controller) SetStep(step, shiftStep float64) {
	if step == 0 {
		step = DefaultStep
	}
	if shiftStep == 0 {
		shiftStep = DefaultShiftStep
	}
	c.step = step
	c.shiftStep = shiftStep
}

// SetDisabled enables or disables the control. Disabling ends any drag,
// discards the buffer and detaches from the surface.
func (c *Controller) SetDisabled(disabled bool) {
	if c.closed || c.disabled == disabled {
		return
	}
	if disabled {
		c.reset("disabled")
		c.disabled = true
		c.unsubscribe()
	} else {
		c.disabled = false
		c.subscribe()
	}
	c.traceAvailability()
}

// SetReadOnly toggles read-only mode. Entering it ends any drag.
func (c *Controller) SetReadOnly(readOnly bool) {
	if c.closed || c.readOnly == readOnly {
		return
	}
	if readOnly && c.dragging {
		c.endDrag("read-only")
	}
	c.readOnly = readOnly
	c.traceAvailability()
}

// Close detaches the controller. Later calls are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.reset("closed")
	c.unsubscribe()
	c.closed = true
}

func (c *Controller) inactive() bool {
	return c.disabled || c.closed
}

func (c *Controller) beginEditing(reason string) {
	if c.state == StateEditing {
		return
	}
	c.pristine = c.display
	c.setState(StateEditing, reason)
}

// commitText processes the buffer and returns to Idle.
func (c *Controller) commitText(reason string) {
	text := c.display
	c.setState(StateIdle, reason)

	if c.readOnly {
		c.display = c.committedText()
		return
	}

	r, err := number.ProcessPattern(value.FromString(text), c.pattern, c.constraints, nil)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			c.display = ""
			c.traceError(log.SourceText, err.Error(), text, log.ErrorActionEmpty)
			if c.onEmpty != nil {
				c.onEmpty()
			}
			return
		}
		c.debugLog("commit rolled back", "input", text, "error", err)
		c.display = c.pristine
		c.traceError(log.SourceText, err.Error(), text, log.ErrorActionRollback)
		return
	}

	if number.Equal(r, c.committed) {
		c.display = r.String
		c.pristine = r.String
		c.traceCommit(log.SourceText, text, r, false, 0)
		return
	}
	c.commit(log.SourceText, text, r, 0)
}

// stepBy commits the committed value shifted by amount.
func (c *Controller) stepBy(src log.Source, amount float64) {
	if c.readOnly {
		return
	}
	base := value.FromNumber(0)
	if c.committed != nil {
		base = c.committed.Record()
	}
	r, err := number.ProcessPattern(base, c.pattern, c.constraints, func(v float64) float64 {
		return v + amount
	})
	if err != nil {
		c.debugLog("step failed", "amount", amount, "error", err)
		c.traceError(src, err.Error(), "", log.ErrorActionIgnored)
		return
	}
	c.commit(src, "", r, amount)
}

// commit stores r and notifies the host with r reshaped like the external
// value.
func (c *Controller) commit(src log.Source, input string, r *number.Result, step float64) {
	c.committed = r
	c.display = r.String
	c.pristine = r.String
	c.traceCommit(src, input, r, c.onChange != nil, step)

	if c.onChange != nil {
		c.onChange(r.Reshape(c.external), r.Clone())
	}
}

// reprocess runs the committed values through the current pattern and
// constraints, keeping their positions.
func (c *Controller) reprocess() {
	in := c.external
	if c.committed != nil && len(c.committed.Array) > 0 {
		in = value.FromNumbers(c.committed.Array...)
	}
	c.committed = c.tryProcess(in)
	if c.state != StateEditing {
		c.display = c.committedText()
		c.pristine = c.display
	}
}

// reset ends dragging and editing, restoring the committed text.
func (c *Controller) reset(reason string) {
	c.focused = false
	c.refocus = false
	if c.dragging {
		c.endDrag(reason)
	}
	if c.state == StateEditing {
		c.display = c.committedText()
		c.pristine = c.display
		c.setState(StateIdle, reason)
	}
	c.mods = Modifiers{}
}

func (c *Controller) tryProcess(v value.Value) *number.Result {
	return number.TryProcessPattern(v, c.pattern, c.constraints, nil)
}

func (c *Controller) committedText() string {
	if c.committed == nil {
		return ""
	}
	return c.committed.String
}

func (c *Controller) setState(s State, reason string) {
	if c.state == s {
		return
	}
	old := c.state
	c.state = s
	c.debugLog("state changed", "from", old, "to", s, "reason", reason)
	c.traceState(log.StateEntityEditing, old.String(), s.String(), reason)
}

func (c *Controller) subscribe() {
	if c.surface == nil || c.cancelSurface != nil {
		return
	}
	c.cancelSurface = c.surface.Subscribe(c)
}

func (c *Controller) unsubscribe() {
	if c.cancelSurface == nil {
		return
	}
	c.cancelSurface()
	c.cancelSurface = nil
}

// debugLog logs a debug message if logging is enabled.
func (c *Controller) debugLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, append([]any{"control", c.id}, args...)...)
	}
}

var _ Listener = (*Controller)(nil)
