package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, KindNone, Value{}.Kind())
	assert.True(t, Value{}.IsZero())
	assert.Equal(t, KindScalar, FromString("1+1").Kind())
	assert.Equal(t, KindScalar, FromNumber(3).Kind())
	assert.Equal(t, KindSequence, FromNumbers(1, 2).Kind())
	assert.Equal(t, KindRecord, FromRecord(map[string]float64{"x": 1}).Kind())

	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestScalar(t *testing.T) {
	n := Number(2.5)
	f, ok := n.Float()
	require.True(t, ok)
	assert.Equal(t, 2.5, f)
	assert.Equal(t, "2.5", n.String())

	s := Text("10px")
	_, ok = s.Float()
	assert.False(t, ok)
	assert.Equal(t, "10px", s.String())

	assert.True(t, Null().IsNull())
	assert.True(t, Scalar{}.IsNull())
	assert.Equal(t, "", Null().String())
}

func TestFromRecordCopies(t *testing.T) {
	m := map[string]float64{"x": 1}
	v := FromRecord(m)
	m["x"] = 2

	n, ok := v.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, n)

	rec := v.Record()
	rec["x"] = 3
	n, _ = v.Lookup("x")
	assert.Equal(t, 1.0, n)
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"none", Value{}, "<none>"},
		{"number", FromNumber(10), "10"},
		{"text", FromString("1+1"), `"1+1"`},
		{"sequence", FromSequence(Number(1), Text("2*2"), Null()), `[1, "2*2", null]`},
		{"record sorted", FromRecord(map[string]float64{"y": 2, "x": 1}), "{x: 1, y: 2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(nil)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = FromAny(12)
	require.NoError(t, err)
	assert.True(t, v.IsNumber())
	assert.Equal(t, 12.0, v.Any())

	v, err = FromAny("3*4")
	require.NoError(t, err)
	assert.Equal(t, "3*4", v.Any())

	v, err = FromAny([]any{1, "2", nil})
	require.NoError(t, err)
	require.Equal(t, KindSequence, v.Kind())
	assert.Equal(t, []any{1.0, "2", nil}, v.Any())

	v, err = FromAny(map[string]any{"x": 1, "y": 2.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 1, "y": 2.5}, v.Any())

	v, err = FromAny(map[any]any{"x": uint8(4)})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 4}, v.Any())
}

func TestFromAnyRejectsUnsupported(t *testing.T) {
	inputs := []any{
		true,
		[]any{[]any{1}},
		map[string]any{"x": "1"},
		map[any]any{1: 2},
		struct{}{},
	}
	for _, in := range inputs {
		_, err := FromAny(in)
		assert.ErrorIs(t, err, ErrUnsupportedType, "input %#v", in)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{10.5, "10.5"},
		{-0.25, "-0.25"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}
