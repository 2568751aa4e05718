package number

import (
	"math"
	"testing"

	"github.com/numval/numval-go/pkg/constraint"
	"github.com/numval/numval-go/pkg/expr"
	"github.com/numval/numval-go/pkg/pattern"
	"github.com/numval/numval-go/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessScenarios(t *testing.T) {
	t.Run("number with unit suffix", func(t *testing.T) {
		r, err := Process(value.FromNumber(10), "{value}px", constraint.Default(), nil)
		require.NoError(t, err)
		assert.Equal(t, &Result{
			Array:  []float64{10},
			String: "10px",
			Object: map[string]float64{"value": 10},
		}, r)
	})

	t.Run("record into pair", func(t *testing.T) {
		r, err := Process(value.FromRecord(map[string]float64{"x": 10, "y": 20}), "{x},{y}", constraint.Default(), nil)
		require.NoError(t, err)
		assert.Equal(t, "10,20", r.String)
		assert.Equal(t, []float64{10, 20}, r.Array)
	})

	t.Run("expression with integer constraints", func(t *testing.T) {
		c := constraint.Constraints{Min: 0, Max: 100, Decimal: 0}
		r, err := Process(value.FromString("1+1"), "{value}", c, nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{2}, r.Array)
		assert.Equal(t, "2", r.String)
	})
}

func TestProcessDisplayTextMatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		input    string
		want     []float64
		wantText string
	}{
		{"suffix", "{value}px", "12px", []float64{12}, "12px"},
		{"expression inside capture", "{value}px", "(2+3)*2px", []float64{10}, "10px"},
		{"two keys with units", "{w}px x {h}px", "10px x 2*10px", []float64{10, 20}, "10px x 20px"},
		{"whitespace around capture", "{w} m", "5 m", []float64{5}, "5 m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Process(value.FromString(tt.input), tt.template, constraint.Default(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Array)
			assert.Equal(t, tt.wantText, r.String)
		})
	}
}

func TestProcessDuplicatePlaceholderUsesFirstCapture(t *testing.T) {
	r, err := Process(value.FromString("3:4"), "{x}:{x}", constraint.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, r.Array)
	assert.Equal(t, "3:3", r.String)
}

func TestProcessUnavailableCaptureReusesFirstGroup(t *testing.T) {
	// The second alternative never participates when the first matches.
	p := pattern.MustCompile("{b}kg|{a}", pattern.WithRawLiterals())

	r, err := ProcessPattern(value.FromString("5kg"), p, constraint.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, r.Array)
	assert.Equal(t, map[string]float64{"b": 5, "a": 5}, r.Object)
}

func TestProcessBroadcast(t *testing.T) {
	tests := []struct {
		name  string
		input value.Value
		want  []float64
	}{
		{"single scalar to every key", value.FromNumber(7), []float64{7, 7, 7}},
		{"single expression to every key", value.FromString("2*3"), []float64{6, 6, 6}},
		{"last value repeated", value.FromString("1, 2"), []float64{1, 2, 2}},
		{"exact count", value.FromString("1,2,3"), []float64{1, 2, 3}},
		{"extra values dropped", value.FromString("1,2,3,4"), []float64{1, 2, 3}},
		{"sequence", value.FromNumbers(4, 5), []float64{4, 5, 5}},
		{"sequence with null", value.FromSequence(value.Null(), value.Text("8")), []float64{8, 8, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Process(tt.input, "{x} {y} {z}", constraint.Default(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Array)
		})
	}
}

func TestProcessRecordDefaultsAbsentKeysToZero(t *testing.T) {
	r, err := Process(value.FromRecord(map[string]float64{"x": 1, "extra": 9}), "{x},{y}", constraint.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 1, "y": 0}, r.Object)
	assert.Equal(t, "1,0", r.String)
}

func TestProcessTransformBeforeConstraints(t *testing.T) {
	c := constraint.Constraints{Min: 0, Max: 10, Decimal: 1}
	add := func(v float64) float64 { return v + 3.333 }

	r, err := Process(value.FromNumbers(1, 9), "{a}/{b}", c, add)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.3, 10}, r.Array)
	assert.Equal(t, "4.3/10", r.String)
}

func TestProcessHiddenKey(t *testing.T) {
	r, err := Process(value.FromNumbers(1, 2, 3), "{r} {g} {b,hidden}", constraint.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, r.Array)
	assert.Equal(t, "1 2 ", r.String)
}

func TestProcessErrors(t *testing.T) {
	t.Run("text that matches nothing", func(t *testing.T) {
		_, err := Process(value.FromString("abc"), "{value}px", constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrPatternMismatch)

		var pmErr *PatternMismatchError
		require.ErrorAs(t, err, &pmErr)
		assert.Equal(t, "abc", pmErr.Input)
		assert.Equal(t, "{value}px", pmErr.Template)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := Process(value.FromString(""), "{value}", constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrPatternMismatch)
	})

	t.Run("capture fails to evaluate", func(t *testing.T) {
		_, err := Process(value.FromString("abcpx"), "{value}px", constraint.Default(), nil)
		assert.ErrorIs(t, err, expr.ErrExpression)
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := Process(value.Value{}, "{value}", constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrInvalidInputType)

		var itErr *InvalidInputTypeError
		require.ErrorAs(t, err, &itErr)
		assert.Equal(t, value.KindNone, itErr.Kind)
	})

	t.Run("unevaluable sequence", func(t *testing.T) {
		_, err := Process(value.FromSequence(value.Text("x")), "{value}", constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrInvalidInputType)
	})

	t.Run("NaN number", func(t *testing.T) {
		_, err := Process(value.FromNumber(math.NaN()), "{value}", constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrInvalidInputType)
	})

	t.Run("bad template", func(t *testing.T) {
		_, err := Process(value.FromNumber(1), "{}", constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrProcessing)
		assert.ErrorIs(t, err, pattern.ErrInvalidTemplate)
	})

	t.Run("nil pattern", func(t *testing.T) {
		_, err := ProcessPattern(value.FromNumber(1), nil, constraint.Default(), nil)
		assert.ErrorIs(t, err, ErrProcessing)
	})
}

func TestTryProcess(t *testing.T) {
	assert.Nil(t, TryProcess(value.Value{}, "{value}", constraint.Default(), nil))
	assert.Nil(t, TryProcess(value.FromString("oops"), "{value}", constraint.Default(), nil))
	assert.Nil(t, TryProcessPattern(value.FromString("oops"), pattern.MustCompile("{v}"), constraint.Default(), nil))

	r := TryProcess(value.FromNumber(5), "{value}", constraint.Default(), nil)
	require.NotNil(t, r)
	assert.Equal(t, "5", r.String)
}

func TestProcessRoundTrip(t *testing.T) {
	c := constraint.Default()
	cases := []struct {
		template string
		input    value.Value
	}{
		{"{value}px", value.FromNumber(10)},
		{"{value}px", value.FromString("1/3")},
		{"{value}", value.FromNumber(-2.5)},
		{"{x}, {y}", value.FromRecord(map[string]float64{"x": 1.5, "y": -2})},
		{"{x},{y}", value.FromNumbers(10, 20)},
		{"{w}px x {h}px", value.FromString("4, 8")},
		{"{a} ; {b} ; {c}", value.FromString("1, 2, 3")},
		{"{deg}°", value.FromNumber(90)},
		{"{x} {y}", value.FromRecord(map[string]float64{"x": 10, "y": 20})},
		{"{x}px {y}px", value.FromNumbers(10, 20)},
		{"{r} {g} {b}", value.FromString("1, 2, 3")},
		{"{value}", value.FromString("10/0")},
		{"{value}px", value.FromString("-1/0")},
	}
	for _, tc := range cases {
		t.Run(tc.template+" "+tc.input.String(), func(t *testing.T) {
			first, err := Process(tc.input, tc.template, c, nil)
			require.NoError(t, err)

			second, err := Process(value.FromString(first.String), tc.template, c, nil)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestProcessSpaceSeparatedText(t *testing.T) {
	r, err := Process(value.FromString("10 20"), "{x} {y}", constraint.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, r.Array)
	assert.Equal(t, "10 20", r.String)
}

func TestProcessResultInvariant(t *testing.T) {
	p := pattern.MustCompile("{a} {b} {c}")
	r, err := ProcessPattern(value.FromString("1,2"), p, constraint.Default(), nil)
	require.NoError(t, err)

	keys := p.Keys()
	require.Len(t, r.Array, len(keys))
	require.Len(t, r.Object, len(keys))
	for i, k := range keys {
		assert.Equal(t, r.Array[i], r.Object[k])
	}
}

func TestProcessStaticTemplate(t *testing.T) {
	r, err := Process(value.FromNumber(3), "n/a", constraint.Default(), nil)
	require.NoError(t, err)
	assert.Empty(t, r.Array)
	assert.Empty(t, r.Object)
	assert.Equal(t, "n/a", r.String)
}
