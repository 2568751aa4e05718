// Package interactive provides the readline session of numval interactive.
// It drives one interaction.Controller from typed commands that stand in
// for focus, keyboard and pointer events.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"gopkg.in/yaml.v3"

	"github.com/numval/numval-go/pkg/interaction"
	"github.com/numval/numval-go/pkg/number"
	"github.com/numval/numval-go/pkg/value"
)

// Session handles interactive mode for numval.
type Session struct {
	ctrl *interaction.Controller
	hub  *interaction.Hub
	out  io.Writer
	rl   *readline.Instance

	// deferred holds platform work scheduled for after the current command.
	deferred []func()
}

// New creates a session around a controller built from cfg. The platform,
// surface and callbacks of cfg are replaced by the session's own. Output
// goes to out until Run attaches a terminal.
func New(cfg interaction.Config, out io.Writer) (*Session, error) {
	s := &Session{
		hub: interaction.NewHub(),
		out: out,
	}

	cfg.Surface = s.hub
	cfg.Platform = &platform{s: s}
	cfg.OnChange = s.onChange
	cfg.OnEmpty = s.onEmpty
	cfg.OnDragChange = s.onDragChange

	ctrl, err := interaction.New(cfg)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

// Controller returns the controller driven by the session.
func (s *Session) Controller() *interaction.Controller { return s.ctrl }

// Stdout returns the writer used for session output.
func (s *Session) Stdout() io.Writer { return s.out }

// Run starts the interactive command loop.
func (s *Session) Run(ctx context.Context, cancel context.CancelFunc) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "numval> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	defer rl.Close()
	defer s.ctrl.Close()

	s.printHelp()
	s.show()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return nil
		}

		if !s.Execute(line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return nil
		}
	}
}

// Execute runs one command line. It returns false when the session
// should end.
func (s *Session) Execute(line string) bool {
	defer s.flush()

	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "focus":
		s.ctrl.Focus()
	case "type", "t":
		s.ctrl.Input(rest)
	case "enter":
		s.ctrl.KeyDown(interaction.KeyEnter)
	case "blur":
		s.ctrl.Blur()
	case "esc", "escape":
		s.ctrl.KeyDown(interaction.KeyEscape)
	case "up":
		s.ctrl.KeyDown(interaction.KeyArrowUp)
	case "down":
		s.ctrl.KeyDown(interaction.KeyArrowDown)

	case "hold":
		s.cmdModifier(args, true)
	case "release":
		s.cmdModifier(args, false)

	case "press":
		s.cmdPointer(args, s.ctrl.PointerDown)
	case "move":
		s.cmdPointer(args, func(x, y float64) { s.ctrl.PointerMove(x, y, true) })
	case "up-pointer", "release-pointer":
		s.hub.PointerUp()

	case "set":
		s.cmdSet(rest)
	case "pattern":
		if err := s.ctrl.SetPattern(rest); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	case "step":
		s.cmdStep(args)
	case "disable":
		s.ctrl.SetDisabled(true)
	case "enable":
		s.ctrl.SetDisabled(false)
	case "readonly":
		s.cmdReadOnly(args)

	case "show", "s":
		s.show()

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `
numval Commands:
  Editing:
    focus              - Focus the field
    type <text>        - Replace the edit buffer
    enter              - Commit the buffer (keeps focus)
    blur               - Commit the buffer and leave the field
    esc                - Discard the buffer
    up / down          - Step the value with the arrow keys

  Modifiers:
    hold <mod>         - Press shift, alt or meta
    release <mod>      - Release shift, alt or meta

  Pointer:
    press <x> [y]      - Press on the drag handle
    move <x> [y]       - Move with the primary button held
    up-pointer         - Release the pointer anywhere

  Host:
    set <value>        - Set the controlled value (YAML: 12, [1, 2], {x: 1}, "10px")
    pattern <tpl>      - Change the template
    step <n> [shift]   - Change the steps
    disable / enable   - Toggle disabled
    readonly on|off    - Toggle read-only

  Other:
    show               - Show the control state
    help               - Show this help
    quit               - Exit
`)
}

func (s *Session) cmdModifier(args []string, down bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: hold|release <shift|alt|meta>")
		return
	}
	var mod interaction.Modifier
	switch strings.ToLower(args[0]) {
	case "shift":
		mod = interaction.ModifierShift
	case "alt":
		mod = interaction.ModifierAlt
	case "meta", "cmd":
		mod = interaction.ModifierMeta
	default:
		fmt.Fprintf(s.out, "Unknown modifier: %s\n", args[0])
		return
	}
	if down {
		s.hub.KeyDown(mod)
	} else {
		s.hub.KeyUp(mod)
	}
	fmt.Fprintf(s.out, "Step: %s\n", value.FormatNumber(s.ctrl.CurrentStep()))
}

func (s *Session) cmdPointer(args []string, fn func(x, y float64)) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(s.out, "Usage: press|move <x> [y]")
		return
	}
	coords := [2]float64{}
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid coordinate: %s\n", arg)
			return
		}
		coords[i] = f
	}
	fn(coords[0], coords[1])
}

func (s *Session) cmdSet(rest string) {
	if rest == "" {
		s.ctrl.SetValue(value.Value{})
		return
	}
	v, err := ParseValue(rest)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %v\n", err)
		return
	}
	s.ctrl.SetValue(v)
}

// ParseValue decodes a YAML flow value: 12 is a number, [1, 2] a
// sequence, {x: 1} a record and anything else text.
func ParseValue(s string) (value.Value, error) {
	var decoded any
	if err := yaml.Unmarshal([]byte(s), &decoded); err != nil {
		return value.Value{}, err
	}
	return value.FromAny(decoded)
}

func (s *Session) cmdStep(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(s.out, "Usage: step <n> [shift]")
		return
	}
	steps := [2]float64{}
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid step: %s\n", arg)
			return
		}
		steps[i] = f
	}
	s.ctrl.SetStep(steps[0], steps[1])
}

func (s *Session) cmdReadOnly(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: readonly on|off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on", "true":
		s.ctrl.SetReadOnly(true)
	case "off", "false":
		s.ctrl.SetReadOnly(false)
	default:
		fmt.Fprintln(s.out, "Usage: readonly on|off")
	}
}

func (s *Session) show() {
	c := s.ctrl
	fmt.Fprintf(s.out, "Pattern:  %q\n", c.Pattern().Template())
	fmt.Fprintf(s.out, "Display:  %q\n", c.Display())
	if r := c.Result(); r != nil {
		fmt.Fprintf(s.out, "Value:    %s\n", formatResult(r))
	} else {
		fmt.Fprintln(s.out, "Value:    <empty>")
	}
	fmt.Fprintf(s.out, "State:    %s", c.State())
	if c.Focused() {
		fmt.Fprint(s.out, " focused")
	}
	if c.Dragging() {
		fmt.Fprint(s.out, " dragging")
	}
	if c.Disabled() {
		fmt.Fprint(s.out, " disabled")
	}
	if c.ReadOnly() {
		fmt.Fprint(s.out, " read-only")
	}
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Step:     %s\n", value.FormatNumber(c.CurrentStep()))
}

func (s *Session) onChange(v value.Value, detail *number.Result) {
	fmt.Fprintf(s.out, "change: %s %s\n", v, formatResult(detail))
}

func (s *Session) onEmpty() {
	fmt.Fprintln(s.out, "change: <empty>")
}

func (s *Session) onDragChange(dragging bool) {
	if dragging {
		fmt.Fprintln(s.out, "drag: start")
	} else {
		fmt.Fprintln(s.out, "drag: end")
	}
}

// flush runs the platform work deferred during the last command.
func (s *Session) flush() {
	for len(s.deferred) > 0 {
		fn := s.deferred[0]
		s.deferred = s.deferred[1:]
		fn()
	}
}

func formatResult(r *number.Result) string {
	parts := make([]string, len(r.Array))
	for i, v := range r.Array {
		parts[i] = value.FormatNumber(v)
	}
	return fmt.Sprintf("%q [%s]", r.String, strings.Join(parts, ", "))
}

// platform reports focus, selection and pointer lock requests on the
// session output.
type platform struct {
	s *Session
}

func (p *platform) RequestPointerLock() { fmt.Fprintln(p.s.out, "platform: pointer locked") }
func (p *platform) ExitPointerLock()    { fmt.Fprintln(p.s.out, "platform: pointer released") }
func (p *platform) Focus()              { fmt.Fprintln(p.s.out, "platform: focus") }
func (p *platform) SelectAll()          { fmt.Fprintln(p.s.out, "platform: select all") }
func (p *platform) Defer(fn func())     { p.s.deferred = append(p.s.deferred, fn) }

var _ interaction.Platform = (*platform)(nil)
