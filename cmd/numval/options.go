package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/numval/numval-go/pkg/config"
	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/interaction"
	nvlog "github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/presets"
)

// defaultPattern is used when no config file, preset or pattern is given.
const defaultPattern = "{value}"

// options holds the control flags shared by every subcommand.
type options struct {
	ConfigFile string
	Control    string
	Preset     string
	Pattern    string
	Min        float64
	Max        float64
	Decimal    int
	Step       float64
	ShiftStep  float64
	Axis       string
	Raw        bool
	LogLevel   string

	// explicit records the flags given on the command line. Only these
	// override the values from a config file or preset.
	explicit map[string]bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", "", "Controls file (YAML)")
	fs.StringVar(&o.Control, "control", "", "Control name in the controls file")
	fs.StringVar(&o.Preset, "preset", "", "Built-in preset: "+strings.Join(presets.Names(), ", "))
	fs.StringVar(&o.Pattern, "pattern", "", "Template, e.g. \"{value}px\" (default \""+defaultPattern+"\")")
	fs.Float64Var(&o.Min, "min", math.Inf(-1), "Lower bound")
	fs.Float64Var(&o.Max, "max", math.Inf(1), "Upper bound")
	fs.IntVar(&o.Decimal, "decimal", constraint.DefaultDecimal, "Fractional digits kept (negative disables rounding)")
	fs.Float64Var(&o.Step, "step", interaction.DefaultStep, "Arrow key and drag step")
	fs.Float64Var(&o.ShiftStep, "shift-step", interaction.DefaultShiftStep, "Step while Shift is held")
	fs.StringVar(&o.Axis, "axis", "x", "Drag axis: x, y")
	fs.BoolVar(&o.Raw, "raw", false, "Embed template literals in the matcher unescaped")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// markExplicit records which flags were set on the command line.
func (o *options) markExplicit(fs *flag.FlagSet) {
	o.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		o.explicit[f.Name] = true
	})
}

// controllerConfig resolves the base configuration from the controls file,
// a preset or the pattern flag, then applies explicit flag overrides.
func (o *options) controllerConfig() (interaction.Config, error) {
	cfg, err := o.baseConfig()
	if err != nil {
		return interaction.Config{}, err
	}

	cons := constraint.Default()
	if cfg.Constraints != nil {
		cons = *cfg.Constraints
	}
	if o.explicit["min"] {
		cons.Min = o.Min
	}
	if o.explicit["max"] {
		cons.Max = o.Max
	}
	if o.explicit["decimal"] {
		cons.Decimal = o.Decimal
	}
	if err := cons.Validate(); err != nil {
		return interaction.Config{}, err
	}
	cfg.Constraints = &cons

	if o.explicit["pattern"] {
		cfg.Pattern = o.Pattern
	}
	if o.explicit["step"] {
		cfg.Step = o.Step
	}
	if o.explicit["shift-step"] {
		cfg.ShiftStep = o.ShiftStep
	}
	if o.explicit["raw"] {
		cfg.RawLiterals = o.Raw
	}
	if o.explicit["axis"] {
		axis, err := interaction.ParseAxis(o.Axis)
		if err != nil {
			return interaction.Config{}, err
		}
		cfg.Axis = axis
	}
	return cfg, nil
}

func (o *options) baseConfig() (interaction.Config, error) {
	switch {
	case o.ConfigFile != "" && o.Preset != "":
		return interaction.Config{}, fmt.Errorf("-config and -preset are mutually exclusive")

	case o.ConfigFile != "":
		f, err := config.Load(o.ConfigFile)
		if err != nil {
			return interaction.Config{}, err
		}
		name := o.Control
		if name == "" {
			names := f.Names()
			if len(names) != 1 {
				return interaction.Config{}, fmt.Errorf("-control required, %s defines %d controls: %s",
					o.ConfigFile, len(names), strings.Join(names, ", "))
			}
			name = names[0]
		}
		ctrl, err := f.Control(name)
		if err != nil {
			return interaction.Config{}, err
		}
		return ctrl.InteractionConfig()

	case o.Preset != "":
		p, ok := presets.Lookup(o.Preset)
		if !ok {
			return interaction.Config{}, fmt.Errorf("unknown preset %q (available: %s)",
				o.Preset, strings.Join(presets.Names(), ", "))
		}
		return p.Config(), nil
	}

	if o.Control != "" {
		return interaction.Config{}, fmt.Errorf("-control requires -config")
	}
	return interaction.Config{Pattern: defaultPattern}, nil
}

// logger returns a debug logger for -log-level debug, nil otherwise.
func (o *options) logger() *slog.Logger {
	if o.LogLevel != "debug" {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// traceLogger combines the trace file and, at debug level, the slog
// output into one event logger. It returns nil when neither is set.
func traceLogger(file *nvlog.FileLogger, logger *slog.Logger) nvlog.Logger {
	var sinks []nvlog.Logger
	// Only append non-nil values to avoid typed-nil interface issue.
	if file != nil {
		sinks = append(sinks, file)
	}
	if logger != nil {
		sinks = append(sinks, nvlog.NewSlogAdapter(logger))
	}
	switch len(sinks) {
	case 0:
		return nil
	case 1:
		return sinks[0]
	}
	return nvlog.NewMultiLogger(sinks...)
}
