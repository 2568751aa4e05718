package presets

import (
	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/interaction"
)

// Preset is a named control definition.
type Preset struct {
	Name        string
	Description string
	Pattern     string
	Min         float64
	Max         float64
	Decimal     int
	Step        float64
	ShiftStep   float64
	Axis        interaction.Axis
	RawLiterals bool
}

// Constraints returns the preset's constraints.
func (p Preset) Constraints() constraint.Constraints {
	return constraint.Constraints{Min: p.Min, Max: p.Max, Decimal: p.Decimal}
}

// Config returns a controller configuration for the preset.
func (p Preset) Config() interaction.Config {
	c := p.Constraints()
	return interaction.Config{
		Pattern:     p.Pattern,
		RawLiterals: p.RawLiterals,
		Constraints: &c,
		Step:        p.Step,
		ShiftStep:   p.ShiftStep,
		Axis:        p.Axis,
	}
}

// All returns every preset in definition order.
func All() []Preset {
	out := make([]Preset, len(all))
	copy(out, all)
	return out
}

// Names returns the preset names in definition order.
func Names() []string {
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the preset called name.
func Lookup(name string) (Preset, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// MustLookup is like Lookup but panics if the preset does not exist.
func MustLookup(name string) Preset {
	p, ok := Lookup(name)
	if !ok {
		panic("presets: unknown preset " + name)
	}
	return p
}
