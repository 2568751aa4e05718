package number

import (
	"github.com/numval/numval-go/pkg/value"
)

// Result is the canonical form of a processed value.
//
// When the template has keys, len(Array) == len(Object) == number of keys
// and Array[i] == Object[keys[i]].
type Result struct {
	// Array holds the values in template key order.
	Array []float64 `cbor:"1,keyasint" json:"array"`

	// String is the rendered template.
	String string `cbor:"2,keyasint" json:"string"`

	// Object maps template keys to values.
	Object map[string]float64 `cbor:"3,keyasint" json:"object"`
}

// Clone returns a deep copy of r. Clone of nil is nil.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := &Result{
		Array:  make([]float64, len(r.Array)),
		String: r.String,
		Object: make(map[string]float64, len(r.Object)),
	}
	copy(out.Array, r.Array)
	for k, v := range r.Object {
		out.Object[k] = v
	}
	return out
}

// Record returns the result's object as a record Value.
func (r *Result) Record() value.Value {
	return value.FromRecord(r.Object)
}

// Reshape returns the result in the runtime shape of like, so a host gets
// back the same kind of value it supplied:
//
//	number      -> number (single key) or sequence of numbers
//	text        -> display string
//	sequence    -> sequence of numbers
//	record      -> record
//	none        -> number (single key) or record
func (r *Result) Reshape(like value.Value) value.Value {
	switch like.Kind() {
	case value.KindScalar:
		if s, _ := like.Scalar(); s.IsText() {
			return value.FromString(r.String)
		}
		if len(r.Array) == 1 {
			return value.FromNumber(r.Array[0])
		}
		return value.FromNumbers(r.Array...)

	case value.KindSequence:
		return value.FromNumbers(r.Array...)

	case value.KindRecord:
		return value.FromRecord(r.Object)
	}

	if len(r.Array) == 1 {
		return value.FromNumber(r.Array[0])
	}
	return value.FromRecord(r.Object)
}
