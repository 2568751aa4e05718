package number

// Equal reports whether a and b describe the same value. Two nil results
// are equal. Otherwise either matching arrays or matching objects suffice.
func Equal(a, b *Result) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return arraysEqual(a.Array, b.Array) || objectsEqual(a.Object, b.Object)
}

// IsExpressionInput reports whether raw text differs from the canonical
// string it was processed into, e.g. "1+1" against "2".
func IsExpressionInput(raw string, processed *Result) bool {
	if processed == nil {
		return true
	}
	return raw != processed.String
}

func arraysEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func objectsEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || va != vb {
			return false
		}
	}
	return true
}
