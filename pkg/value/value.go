package value

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrUnsupportedType is returned by FromAny for data that is not a scalar,
// a sequence of scalars, or a record of numbers.
var ErrUnsupportedType = errors.New("unsupported value type")

// Kind is the runtime shape of a Value.
type Kind uint8

const (
	// KindNone is the zero Value (no input).
	KindNone Kind = iota

	// KindScalar is a single string or number.
	KindScalar

	// KindSequence is an ordered list of optional scalars.
	KindSequence

	// KindRecord is a mapping of key to number.
	KindRecord
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

type scalarKind uint8

const (
	scalarNull scalarKind = iota
	scalarText
	scalarNumber
)

// Scalar is a string, a number, or null. The zero Scalar is null.
type Scalar struct {
	kind scalarKind
	text string
	num  float64
}

// Text returns a string scalar.
func Text(s string) Scalar {
	return Scalar{kind: scalarText, text: s}
}

// Number returns a numeric scalar.
func Number(f float64) Scalar {
	return Scalar{kind: scalarNumber, num: f}
}

// Null returns the null scalar.
func Null() Scalar {
	return Scalar{}
}

// IsNull returns true for the null scalar.
func (s Scalar) IsNull() bool { return s.kind == scalarNull }

// IsNumber returns true for numeric scalars.
func (s Scalar) IsNumber() bool { return s.kind == scalarNumber }

// IsText returns true for string scalars.
func (s Scalar) IsText() bool { return s.kind == scalarText }

// Float returns the number held by a numeric scalar.
func (s Scalar) Float() (float64, bool) {
	return s.num, s.kind == scalarNumber
}

// String returns the scalar's string form. Null renders as "".
func (s Scalar) String() string {
	switch s.kind {
	case scalarText:
		return s.text
	case scalarNumber:
		return FormatNumber(s.num)
	default:
		return ""
	}
}

// Value is a numeric input: a scalar, a sequence, or a record.
// The zero Value has KindNone.
type Value struct {
	kind   Kind
	scalar Scalar
	seq    []Scalar
	record map[string]float64
}

// FromString returns a scalar Value holding text.
func FromString(s string) Value {
	return Value{kind: KindScalar, scalar: Text(s)}
}

// FromNumber returns a scalar Value holding a number.
func FromNumber(f float64) Value {
	return Value{kind: KindScalar, scalar: Number(f)}
}

// FromScalar returns a scalar Value.
func FromScalar(s Scalar) Value {
	return Value{kind: KindScalar, scalar: s}
}

// FromSequence returns a sequence Value. The elements are copied.
func FromSequence(elems ...Scalar) Value {
	seq := make([]Scalar, len(elems))
	copy(seq, elems)
	return Value{kind: KindSequence, seq: seq}
}

// FromNumbers returns a sequence Value of numbers.
func FromNumbers(nums ...float64) Value {
	seq := make([]Scalar, len(nums))
	for i, n := range nums {
		seq[i] = Number(n)
	}
	return Value{kind: KindSequence, seq: seq}
}

// FromRecord returns a record Value. The map is copied.
func FromRecord(m map[string]float64) Value {
	rec := make(map[string]float64, len(m))
	for k, v := range m {
		rec[k] = v
	}
	return Value{kind: KindRecord, record: rec}
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsZero returns true for the zero Value.
func (v Value) IsZero() bool { return v.kind == KindNone }

// Scalar returns the scalar held by a scalar Value.
func (v Value) Scalar() (Scalar, bool) {
	return v.scalar, v.kind == KindScalar
}

// IsNumber returns true if v is a numeric scalar.
func (v Value) IsNumber() bool {
	return v.kind == KindScalar && v.scalar.IsNumber()
}

// Sequence returns a copy of the elements of a sequence Value.
func (v Value) Sequence() []Scalar {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Scalar, len(v.seq))
	copy(out, v.seq)
	return out
}

// Record returns a copy of the mapping held by a record Value.
func (v Value) Record() map[string]float64 {
	if v.kind != KindRecord {
		return nil
	}
	out := make(map[string]float64, len(v.record))
	for k, n := range v.record {
		out[k] = n
	}
	return out
}

// Lookup returns the number stored under key in a record Value.
func (v Value) Lookup(key string) (float64, bool) {
	if v.kind != KindRecord {
		return 0, false
	}
	n, ok := v.record[key]
	return n, ok
}

// String returns a human-readable form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		if v.scalar.IsText() {
			return strconv.Quote(v.scalar.text)
		}
		return v.scalar.String()
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, s := range v.seq {
			switch {
			case s.IsNull():
				parts[i] = "null"
			case s.IsText():
				parts[i] = strconv.Quote(s.text)
			default:
				parts[i] = s.String()
			}
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindRecord:
		keys := make([]string, 0, len(v.record))
		for k := range v.record {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + FormatNumber(v.record[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<none>"
	}
}

// Any returns the value as plain Go data suitable for JSON, YAML or CBOR
// encoding: string, float64, []any (null elements as nil), or
// map[string]float64. The zero Value returns nil.
func (v Value) Any() any {
	switch v.kind {
	case KindScalar:
		return scalarAny(v.scalar)
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, s := range v.seq {
			out[i] = scalarAny(s)
		}
		return out
	case KindRecord:
		return v.Record()
	default:
		return nil
	}
}

func scalarAny(s Scalar) any {
	switch s.kind {
	case scalarText:
		return s.text
	case scalarNumber:
		return s.num
	default:
		return nil
	}
}

// FromAny converts decoded data into a Value. It accepts strings, Go
// integer and float types, slices of those (nil elements become null), and
// maps with string keys and numeric values. nil returns the zero Value.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case string:
		return FromString(t), nil
	case []float64:
		return FromNumbers(t...), nil
	case []string:
		seq := make([]Scalar, len(t))
		for i, s := range t {
			seq[i] = Text(s)
		}
		return FromSequence(seq...), nil
	case []any:
		seq := make([]Scalar, len(t))
		for i, elem := range t {
			s, err := scalarFromAny(elem)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			seq[i] = s
		}
		return FromSequence(seq...), nil
	case map[string]float64:
		return FromRecord(t), nil
	case map[string]any:
		rec := make(map[string]float64, len(t))
		for k, elem := range t {
			n, ok := toFloat(elem)
			if !ok {
				return Value{}, fmt.Errorf("key %q: %w: %T", k, ErrUnsupportedType, elem)
			}
			rec[k] = n
		}
		return FromRecord(rec), nil
	case map[any]any:
		rec := make(map[string]float64, len(t))
		for k, elem := range t {
			key, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: record key %T", ErrUnsupportedType, k)
			}
			n, ok := toFloat(elem)
			if !ok {
				return Value{}, fmt.Errorf("key %q: %w: %T", key, ErrUnsupportedType, elem)
			}
			rec[key] = n
		}
		return FromRecord(rec), nil
	}

	if n, ok := toFloat(x); ok {
		return FromNumber(n), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

func scalarFromAny(x any) (Scalar, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case string:
		return Text(t), nil
	}
	if n, ok := toFloat(x); ok {
		return Number(n), nil
	}
	return Scalar{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// FormatNumber renders a number the way it appears in display strings:
// shortest decimal form without exponent, "Infinity", "-Infinity" or "NaN".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
