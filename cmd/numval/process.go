package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/numval/numval-go/cmd/numval/interactive"
	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/interaction"
	nvlog "github.com/numval/numval-go/pkg/log"
	"github.com/numval/numval-go/pkg/number"
	"github.com/numval/numval-go/pkg/pattern"
	"github.com/numval/numval-go/pkg/value"
)

// Output formats for the process command.
const (
	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

// parseInput turns a command-line argument into a value. Typed inputs are
// decoded as YAML flow values, so "12" is a number, "[1, 2]" a sequence
// and "{x: 1}" a record. Everything else is text.
func parseInput(arg string, typed bool) (value.Value, error) {
	if !typed {
		return value.FromString(arg), nil
	}
	v, err := interactive.ParseValue(arg)
	if err != nil {
		return value.Value{}, fmt.Errorf("decode %q: %w", arg, err)
	}
	return v, nil
}

// processInputs processes each input against cfg and writes one result per
// input. Failures are reported inline; the number of failures is returned.
func processInputs(w io.Writer, cfg interaction.Config, inputs []string, typed bool, format string) (int, error) {
	switch format {
	case formatText, formatJSON, formatCBOR:
	default:
		return 0, fmt.Errorf("unknown format: %s (supported: text, json, cbor)", format)
	}

	var opts []pattern.Option
	if cfg.RawLiterals {
		opts = append(opts, pattern.WithRawLiterals())
	}
	p, err := pattern.Compile(cfg.Pattern, opts...)
	if err != nil {
		return 0, fmt.Errorf("compile pattern: %w", err)
	}
	cons := constraint.Default()
	if cfg.Constraints != nil {
		cons = *cfg.Constraints
	}

	failed := 0
	enc := json.NewEncoder(w)
	for _, arg := range inputs {
		in, err := parseInput(arg, typed)
		var r *number.Result
		if err == nil {
			r, err = number.ProcessPattern(in, p, cons, nil)
		}
		if err != nil {
			failed++
			if format == formatJSON {
				if encErr := enc.Encode(map[string]string{"input": arg, "error": err.Error()}); encErr != nil {
					return failed, encErr
				}
				continue
			}
			fmt.Fprintf(w, "%s: error: %v\n", arg, err)
			continue
		}

		switch format {
		case formatText:
			fmt.Fprintf(w, "%s -> %s %s\n", arg, r.String, formatValues(p.Keys(), r))
		case formatJSON:
			if err := enc.Encode(jsonResult(arg, r)); err != nil {
				return failed, err
			}
		case formatCBOR:
			data, err := nvlog.Marshal(r)
			if err != nil {
				return failed, fmt.Errorf("encode %q: %w", arg, err)
			}
			fmt.Fprintln(w, hex.EncodeToString(data))
		}
	}
	return failed, nil
}

// formatValues renders the result object in template key order.
func formatValues(keys []string, r *number.Result) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + value.FormatNumber(r.Object[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// jsonResult flattens a result for encoding/json, which rejects
// infinities; those are written as strings.
func jsonResult(input string, r *number.Result) map[string]any {
	array := make([]any, len(r.Array))
	for i, v := range r.Array {
		array[i] = jsonNumber(v)
	}
	object := make(map[string]any, len(r.Object))
	for k, v := range r.Object {
		object[k] = jsonNumber(v)
	}
	return map[string]any{
		"input":  input,
		"string": r.String,
		"array":  array,
		"object": object,
	}
}

func jsonNumber(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return value.FormatNumber(f)
	}
	return f
}
