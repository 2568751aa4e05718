package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScalar(t *testing.T) {
	tests := []struct {
		name       string
		in         Value
		wantValues []float64
		wantScalar bool
	}{
		{"number", FromNumber(10), []float64{10}, true},
		{"expression", FromString("1+1"), []float64{2}, true},
		{"comma separated", FromString("10, 2*3, (1+1)/4"), []float64{10, 6, 0.5}, true},
		{"unit suffix fails", FromString("10px"), nil, false},
		{"one bad segment degrades batch", FromString("1,abc,3"), nil, false},
		{"empty string", FromString(""), nil, false},
		{"NaN number", FromNumber(math.NaN()), nil, false},
		{"infinite number", FromNumber(math.Inf(1)), []float64{math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.in)
			if tt.wantValues == nil {
				assert.Empty(t, c.Values)
			} else {
				assert.Equal(t, tt.wantValues, c.Values)
			}
			assert.Equal(t, tt.wantScalar, c.ScalarLike)
			assert.False(t, c.RecordLike)
		})
	}
}

func TestClassifySequence(t *testing.T) {
	c := Classify(FromSequence(Number(1), Text("2*3"), Null(), Text("4")))
	assert.Equal(t, []float64{1, 6, 4}, c.Values)
	assert.True(t, c.ScalarLike)

	c = Classify(FromSequence(Number(1), Text("oops")))
	assert.Empty(t, c.Values)
	assert.False(t, c.ScalarLike)

	c = Classify(FromSequence(Null(), Null()))
	assert.Empty(t, c.Values)
	assert.False(t, c.ScalarLike)

	// Elements are not split on commas.
	c = Classify(FromSequence(Text("1,2")))
	assert.False(t, c.ScalarLike)
}

func TestClassifyRecord(t *testing.T) {
	c := Classify(FromRecord(map[string]float64{"x": 1}))
	assert.True(t, c.RecordLike)
	assert.False(t, c.ScalarLike)
	assert.Empty(t, c.Values)
}

func TestClassifyNone(t *testing.T) {
	c := Classify(Value{})
	assert.False(t, c.RecordLike)
	assert.False(t, c.ScalarLike)
}
