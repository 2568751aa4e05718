package main

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/interaction"
	nvlog "github.com/numval/numval-go/pkg/log"
)

func parseOptions(t *testing.T, args ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var opts options
	opts.register(fs)
	require.NoError(t, fs.Parse(args))
	opts.markExplicit(fs)
	return &opts
}

func writeControls(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "controls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoControls = `controls:
  - name: padding
    pattern: "{value}px"
    min: 0
    decimal: 0
  - name: scale
    pattern: "{value}x"
    step: 0.1
`

func TestControllerConfigDefaults(t *testing.T) {
	cfg, err := parseOptions(t).controllerConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultPattern, cfg.Pattern)
	require.NotNil(t, cfg.Constraints)
	assert.Equal(t, constraint.Default(), *cfg.Constraints)
	assert.Zero(t, cfg.Step, "unset step leaves the controller default")
}

func TestControllerConfigPresetOverrides(t *testing.T) {
	cfg, err := parseOptions(t, "-preset", "percent", "-max", "50", "-step", "5").controllerConfig()
	require.NoError(t, err)

	assert.Equal(t, "{value}%", cfg.Pattern)
	require.NotNil(t, cfg.Constraints)
	assert.Equal(t, 0.0, cfg.Constraints.Min)
	assert.Equal(t, 50.0, cfg.Constraints.Max)
	assert.Equal(t, 1, cfg.Constraints.Decimal)
	assert.Equal(t, 5.0, cfg.Step)
}

func TestControllerConfigFromFile(t *testing.T) {
	path := writeControls(t, twoControls)

	cfg, err := parseOptions(t, "-config", path, "-control", "scale", "-axis", "y").controllerConfig()
	require.NoError(t, err)
	assert.Equal(t, "{value}x", cfg.Pattern)
	assert.Equal(t, 0.1, cfg.Step)
	assert.Equal(t, interaction.AxisY, cfg.Axis)

	cfg, err = parseOptions(t, "-config", path, "-control", "padding", "-pattern", "{value}em").controllerConfig()
	require.NoError(t, err)
	assert.Equal(t, "{value}em", cfg.Pattern)
	assert.Equal(t, 0.0, cfg.Constraints.Min)
	assert.True(t, math.IsInf(cfg.Constraints.Max, 1))
}

func TestControllerConfigSingleControl(t *testing.T) {
	path := writeControls(t, `controls:
  - name: only
    pattern: "{deg}deg"
`)
	cfg, err := parseOptions(t, "-config", path).controllerConfig()
	require.NoError(t, err)
	assert.Equal(t, "{deg}deg", cfg.Pattern)
}

func TestControllerConfigErrors(t *testing.T) {
	path := writeControls(t, twoControls)

	tests := []struct {
		name string
		args []string
	}{
		{"config and preset", []string{"-config", path, "-preset", "length"}},
		{"ambiguous control", []string{"-config", path}},
		{"unknown control", []string{"-config", path, "-control", "margin"}},
		{"control without config", []string{"-control", "padding"}},
		{"unknown preset", []string{"-preset", "weight"}},
		{"inverted range", []string{"-min", "5", "-max", "1"}},
		{"bad axis", []string{"-axis", "z"}},
		{"missing file", []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(t, tt.args...).controllerConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoggerOnlyForDebug(t *testing.T) {
	assert.Nil(t, parseOptions(t).logger())
	assert.NotNil(t, parseOptions(t, "-log-level", "debug").logger())
}

func TestTraceLogger(t *testing.T) {
	assert.Nil(t, traceLogger(nil, nil))

	file, err := nvlog.NewFileLogger(filepath.Join(t.TempDir(), "trace"+nvlog.Extension))
	require.NoError(t, err)
	defer file.Close()
	assert.Same(t, file, traceLogger(file, nil))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, ok := traceLogger(nil, logger).(*nvlog.SlogAdapter)
	assert.True(t, ok)

	both := traceLogger(file, logger)
	require.IsType(t, &nvlog.MultiLogger{}, both)
	both.Log(nvlog.Event{ControlID: "ctrl", Category: nvlog.CategoryCommit})
	assert.Equal(t, 1, file.Count())
	assert.Contains(t, buf.String(), "control_id=ctrl")
}
