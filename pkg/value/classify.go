package value

import (
	"math"
	"strings"

	"github.com/numval/numval-go/pkg/expr"
)

// Classification is the result of normalizing raw input.
type Classification struct {
	// Values holds the evaluated numbers of a scalar or sequence input, in
	// input order. It is empty when any element failed to evaluate.
	Values []float64

	// ScalarLike is true when a scalar or sequence produced at least one value.
	ScalarLike bool

	// RecordLike is true for record inputs. Records are not evaluated.
	RecordLike bool
}

// Classify normalizes raw input into candidate numeric values.
//
// Scalar strings are split on ',' and each segment is evaluated as an
// expression. Sequence elements are evaluated one by one; null elements are
// skipped. Evaluation failures are swallowed and leave Values empty.
func Classify(v Value) Classification {
	switch v.kind {
	case KindScalar:
		values := evaluateScalar(v.scalar)
		return Classification{Values: values, ScalarLike: len(values) > 0}

	case KindSequence:
		values := evaluateSequence(v.seq)
		return Classification{Values: values, ScalarLike: len(values) > 0}

	case KindRecord:
		return Classification{RecordLike: true}
	}
	return Classification{}
}

func evaluateScalar(s Scalar) []float64 {
	switch s.kind {
	case scalarNumber:
		if math.IsNaN(s.num) {
			return nil
		}
		return []float64{s.num}
	case scalarText:
		segments := strings.Split(s.text, ",")
		out := make([]float64, 0, len(segments))
		for _, seg := range segments {
			n, err := expr.Evaluate(seg)
			if err != nil {
				return nil
			}
			out = append(out, n)
		}
		return out
	default:
		return nil
	}
}

func evaluateSequence(seq []Scalar) []float64 {
	out := make([]float64, 0, len(seq))
	for _, s := range seq {
		switch s.kind {
		case scalarNull:
			continue
		case scalarNumber:
			if math.IsNaN(s.num) {
				return nil
			}
			out = append(out, s.num)
		case scalarText:
			n, err := expr.Evaluate(s.text)
			if err != nil {
				return nil
			}
			out = append(out, n)
		}
	}
	return out
}
