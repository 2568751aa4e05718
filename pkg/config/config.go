package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/interaction"
	"github.com/numval/numval-go/pkg/pattern"
	"github.com/numval/numval-go/pkg/value"
)

// File is a parsed control file.
type File struct {
	// Path is the file the controls were loaded from (empty for Parse).
	Path string

	// Controls in file order.
	Controls []Control
}

// Control is one control definition.
type Control struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Pattern     string   `yaml:"pattern"`
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
	Decimal     *int     `yaml:"decimal,omitempty"`
	Step        float64  `yaml:"step,omitempty"`
	ShiftStep   float64  `yaml:"shift_step,omitempty"`
	Axis        string   `yaml:"axis,omitempty"`
	RawLiterals bool     `yaml:"raw_literals,omitempty"`
	ReadOnly    bool     `yaml:"read_only,omitempty"`
	Value       any      `yaml:"value,omitempty"`

	// Line is the line of the definition in its file.
	Line int `yaml:"-"`
}

type fileYAML struct {
	Controls []yaml.Node `yaml:"controls"`
}

// Parse parses and validates a control file.
func Parse(data []byte) (*File, error) {
	var raw fileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	f := &File{}
	seen := make(map[string]int)
	for i := range raw.Controls {
		node := &raw.Controls[i]

		var c Control
		if err := node.Decode(&c); err != nil {
			return nil, &LoadError{
				Line:    node.Line,
				Message: "invalid control",
				Cause:   err,
			}
		}
		c.Line = node.Line

		if c.Name == "" {
			return nil, &LoadError{Line: c.Line, Message: "control name is required"}
		}
		if prev, dup := seen[c.Name]; dup {
			return nil, &LoadError{
				Line:    c.Line,
				Message: fmt.Sprintf("duplicate control %q (first defined on line %d)", c.Name, prev),
			}
		}
		seen[c.Name] = c.Line

		if err := c.Validate(); err != nil {
			return nil, &LoadError{
				Line:    c.Line,
				Message: fmt.Sprintf("control %q", c.Name),
				Cause:   err,
			}
		}
		f.Controls = append(f.Controls, c)
	}
	return f, nil
}

// Load reads and parses a control file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	f, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}
	f.Path = path
	return f, nil
}

// Control returns the control called name.
func (f *File) Control(name string) (Control, error) {
	for _, c := range f.Controls {
		if c.Name == name {
			return c, nil
		}
	}
	return Control{}, fmt.Errorf("%w: %q", ErrUnknownControl, name)
}

// Names returns the control names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Controls))
	for i, c := range f.Controls {
		names[i] = c.Name
	}
	return names
}

// Validate checks the pattern, constraints, axis and initial value.
func (c Control) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("%w: pattern is required", pattern.ErrInvalidTemplate)
	}
	if _, err := pattern.Compile(c.Pattern, c.patternOptions()...); err != nil {
		return err
	}
	if err := c.Constraints().Validate(); err != nil {
		return err
	}
	if _, err := interaction.ParseAxis(c.Axis); err != nil {
		return err
	}
	if _, err := c.InitialValue(); err != nil {
		return err
	}
	return nil
}

// Constraints returns the control's constraints.
func (c Control) Constraints() constraint.Constraints {
	cons := constraint.Default()
	if c.Min != nil {
		cons.Min = *c.Min
	}
	if c.Max != nil {
		cons.Max = *c.Max
	}
	if c.Decimal != nil {
		cons.Decimal = *c.Decimal
	}
	return cons
}

// InitialValue converts the YAML value into a value.Value. An absent value
// is the zero Value.
func (c Control) InitialValue() (value.Value, error) {
	return value.FromAny(c.Value)
}

// InteractionConfig returns a controller configuration for the control.
// Callbacks, platform and loggers are left for the caller.
func (c Control) InteractionConfig() (interaction.Config, error) {
	axis, err := interaction.ParseAxis(c.Axis)
	if err != nil {
		return interaction.Config{}, err
	}
	v, err := c.InitialValue()
	if err != nil {
		return interaction.Config{}, err
	}
	cons := c.Constraints()
	return interaction.Config{
		Pattern:     c.Pattern,
		RawLiterals: c.RawLiterals,
		Constraints: &cons,
		Step:        c.Step,
		ShiftStep:   c.ShiftStep,
		Axis:        axis,
		Value:       v,
		ReadOnly:    c.ReadOnly,
	}, nil
}

func (c Control) patternOptions() []pattern.Option {
	if c.RawLiterals {
		return []pattern.Option{pattern.WithRawLiterals()}
	}
	return nil
}
