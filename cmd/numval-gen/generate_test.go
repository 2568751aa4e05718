package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/numval/numval-go/pkg/config"
)

const testControls = `
controls:
  - name: opacity
    description: Alpha
    pattern: "{value}"
    min: 0
    max: 1
    step: 0.01
  - name: line-height
    pattern: "{value}"
    axis: y
    raw_literals: true
`

func parseControls(t *testing.T, src string) *config.File {
	t.Helper()
	f, err := config.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return f
}

func TestGenerate(t *testing.T) {
	code, err := Generate(parseControls(t, testControls), "presets")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, want := range []string{
		"package presets",
		`NameOpacity = "opacity"`,
		`NameLineHeight = "line-height"`,
		`Description: "Alpha",`,
		"Min:         0,",
		"Max:         1,",
		"Step:        0.01,",
		"Min:         math.Inf(-1),",
		"Max:         math.Inf(1),",
		"Axis:        interaction.AxisY,",
		"RawLiterals: true,",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q", want)
		}
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "presets_gen.go", code, 0); err != nil {
		t.Errorf("generated code does not parse: %v", err)
	}
}

func TestGenerateRejectsCollidingNames(t *testing.T) {
	f := parseControls(t, `
controls:
  - name: line-height
    pattern: "{v}"
  - name: line_height
    pattern: "{v}"
`)
	if _, err := Generate(f, "presets"); err == nil {
		t.Error("expected error for colliding constant names")
	}
}

func TestConstName(t *testing.T) {
	tests := map[string]string{
		"opacity":     "NameOpacity",
		"line-height": "NameLineHeight",
		"rgb":         "NameRgb",
		"2d offset":   "NameN2dOffset",
		"---":         "",
	}
	for in, want := range tests {
		if got := constName(in); got != want {
			t.Errorf("constName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGoFloat(t *testing.T) {
	tests := map[float64]string{
		0:    "0",
		-360: "-360",
		0.01: "0.01",
		1e21: "1e+21",
	}
	for in, want := range tests {
		if got := goFloat(in); got != want {
			t.Errorf("goFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRunWritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "controls.yaml")
	output := filepath.Join(dir, "presets_gen.go")
	if err := os.WriteFile(input, []byte(testControls), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := run(input, output, "presets"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "// Code generated by numval-gen. DO NOT EDIT.") {
		t.Errorf("missing generated header")
	}
}
