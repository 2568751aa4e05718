// Package value defines the numeric values accepted by numeric inputs and
// classifies raw input before it is resolved against a pattern.
//
// A Value is one of three shapes:
//
//	Scalar    "10", "1+1", "10, 20", 42
//	Sequence  [10, "2*4", null]
//	Record    {x: 10, y: 20}
//
// Classify evaluates scalars and sequences with package expr. A single
// malformed comma segment or element degrades the whole batch to zero values
// instead of returning an error; resolution against the pattern then decides
// what to do with the input.
package value
