package constraint

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned by Validate for unusable bounds.
var ErrInvalidRange = errors.New("invalid range")

// DefaultDecimal is the number of fractional digits kept by Default.
const DefaultDecimal = 2

// Constraints bounds and rounds values.
type Constraints struct {
	// Min is the lower bound (inclusive).
	Min float64

	// Max is the upper bound (inclusive).
	Max float64

	// Decimal is the number of fractional digits kept. Negative disables rounding.
	Decimal int
}

// Default returns unbounded constraints with two fractional digits.
func Default() Constraints {
	return Constraints{
		Min:     math.Inf(-1),
		Max:     math.Inf(1),
		Decimal: DefaultDecimal,
	}
}

// Validate checks that the bounds are ordered and not NaN.
func (c Constraints) Validate() error {
	if math.IsNaN(c.Min) || math.IsNaN(c.Max) {
		return fmt.Errorf("%w: bound is NaN", ErrInvalidRange)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, c.Min, c.Max)
	}
	return nil
}

// Apply rounds and clamps a single value.
func (c Constraints) Apply(v float64) float64 {
	return ApplyOne(v, c.Min, c.Max, c.Decimal)
}

// ApplyMany constrains every value of m and returns the result as a new map.
func (c Constraints) ApplyMany(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = c.Apply(v)
	}
	return out
}

// ApplyOne rounds v to decimals fractional digits, then clamps it into
// [min, max]. Rounding is half away from zero.
func ApplyOne(v, min, max float64, decimals int) float64 {
	return clamp(round(v, decimals), min, max)
}

func round(v float64, decimals int) float64 {
	if decimals < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow10(decimals)
	r := math.Round(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		// v*p overflowed; v has no representable fractional digits anyway.
		return v
	}
	return r
}

func clamp(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}
