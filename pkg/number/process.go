package number

import (
	"fmt"

	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/expr"
	"github.com/numval/numval-go/pkg/pattern"
	"github.com/numval/numval-go/pkg/value"
)

// Transform maps each resolved value before constraints are applied.
type Transform func(float64) float64

// Process compiles template and processes in against it.
func Process(in value.Value, template string, c constraint.Constraints, transform Transform, opts ...pattern.Option) (*Result, error) {
	p, err := pattern.Compile(template, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
	}
	return ProcessPattern(in, p, c, transform)
}

// TryProcess is like Process but returns nil instead of an error.
func TryProcess(in value.Value, template string, c constraint.Constraints, transform Transform, opts ...pattern.Option) *Result {
	r, err := Process(in, template, c, transform, opts...)
	if err != nil {
		return nil
	}
	return r
}

// ProcessPattern processes in against a compiled pattern.
func ProcessPattern(in value.Value, p *pattern.Pattern, c constraint.Constraints, transform Transform) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil pattern", ErrProcessing)
	}
	keys := p.Keys()

	resolved, err := resolve(in, p, keys)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Array:  make([]float64, len(keys)),
		Object: make(map[string]float64, len(keys)),
	}
	for i, key := range keys {
		v := resolved[i]
		if transform != nil {
			v = transform(v)
		}
		v = c.Apply(v)
		r.Array[i] = v
		r.Object[key] = v
	}
	r.String = p.Format(r.Object)
	return r, nil
}

// TryProcessPattern is like ProcessPattern but returns nil instead of an error.
func TryProcessPattern(in value.Value, p *pattern.Pattern, c constraint.Constraints, transform Transform) *Result {
	r, err := ProcessPattern(in, p, c, transform)
	if err != nil {
		return nil
	}
	return r
}

// resolve returns one raw value per key, in key order.
func resolve(in value.Value, p *pattern.Pattern, keys []string) ([]float64, error) {
	cls := value.Classify(in)
	text, isText := textOf(in)

	if isText && !cls.ScalarLike && !cls.RecordLike {
		if m, ok := p.Match(text); ok {
			return fromMatch(m, keys, text, p)
		}
	}

	switch {
	case cls.ScalarLike:
		return broadcast(cls.Values, len(keys)), nil

	case cls.RecordLike:
		out := make([]float64, len(keys))
		for i, key := range keys {
			// Absent keys stay 0.
			out[i], _ = in.Lookup(key)
		}
		return out, nil

	case isText:
		return nil, &PatternMismatchError{Input: text, Template: p.Template()}
	}
	return nil, &InvalidInputTypeError{Kind: in.Kind()}
}

// textOf returns the text of a string scalar.
func textOf(in value.Value) (string, bool) {
	s, ok := in.Scalar()
	if !ok || !s.IsText() {
		return "", false
	}
	return s.String(), true
}

// fromMatch evaluates one capture group per key. A key whose own group is
// unavailable reuses the first group.
func fromMatch(m pattern.Match, keys []string, text string, p *pattern.Pattern) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, key := range keys {
		g, ok := m.Group(i)
		if !ok {
			g, ok = m.Group(0)
		}
		if !ok {
			return nil, &PatternMismatchError{Input: text, Template: p.Template()}
		}
		v, err := expr.Evaluate(g)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[i] = v
	}
	return out, nil
}

// broadcast assigns values positionally, repeating the last value for keys
// beyond len(values).
func broadcast(values []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		idx := i
		if idx >= len(values) {
			idx = len(values) - 1
		}
		out[i] = values[idx]
	}
	return out
}
