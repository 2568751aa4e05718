package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/numval/numval-go/pkg/config"
	"github.com/numval/numval-go/pkg/interaction"
)

var funcMap = template.FuncMap{
	"quote":     strconv.Quote,
	"float":     goFloat,
	"axisConst": func(a interaction.Axis) string { return "Axis" + strings.ToUpper(a.String()) },
}

var presetsTmpl = template.Must(template.New("presets").Funcs(funcMap).Parse(`// Code generated by numval-gen. DO NOT EDIT.

package {{.Package}}

import (
	"math"

	"github.com/numval/numval-go/pkg/interaction"
)

// Preset names.
const (
{{- range .Presets}}
	{{.Const}} = {{quote .Name}}
{{- end}}
)

var all = []Preset{
{{- range .Presets}}
	{
		Name:        {{quote .Name}},
		Description: {{quote .Description}},
		Pattern:     {{quote .Pattern}},
		Min:         {{float .Min}},
		Max:         {{float .Max}},
		Decimal:     {{.Decimal}},
		Step:        {{float .Step}},
		ShiftStep:   {{float .ShiftStep}},
		Axis:        interaction.{{axisConst .Axis}},
		RawLiterals: {{.RawLiterals}},
	},
{{- end}}
}
`))

type presetsData struct {
	Package string
	Presets []presetData
}

type presetData struct {
	Const       string
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

// Generate renders the presets source for every control in f.
func Generate(f *config.File, pkg string) (string, error) {
	data := presetsData{Package: pkg}
	consts := make(map[string]string)

	for _, c := range f.Controls {
		name := constName(c.Name)
		if name == "" {
			return "", fmt.Errorf("control %q: name has no identifier characters", c.Name)
		}
		if prev, dup := consts[name]; dup {
			return "", fmt.Errorf("controls %q and %q both map to %s", prev, c.Name, name)
		}
		consts[name] = c.Name

		axis, err := interaction.ParseAxis(c.Axis)
		if err != nil {
			return "", fmt.Errorf("control %q: %w", c.Name, err)
		}
		cons := c.Constraints()
		data.Presets = append(data.Presets, presetData{
			Const:       name,
			Name:        c.Name,
			Description: c.Description,
			Pattern:     c.Pattern,
			Min:         cons.Min,
			Max:         cons.Max,
			Decimal:     cons.Decimal,
			Step:        c.Step,
			ShiftStep:   c.ShiftStep,
			Axis:        axis,
			RawLiterals: c.RawLiterals,
		})
	}

	var b strings.Builder
	if err := presetsTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// constName converts "line-height" to "NameLineHeight".
func constName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteByte('N')
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return ""
	}
	return "Name" + b.String()
}

// goFloat renders f as a Go expression.
func goFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "math.Inf(1)"
	case math.IsInf(f, -1):
		return "math.Inf(-1)"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
