// Package number turns numeric input into canonical results.
//
// Process is the primary contract. It compiles a template, normalizes the
// input, resolves one value per template key, applies an optional
// transform and the constraints, and returns a Result holding the same
// numbers in three shapes:
//
//	Array   []float64 aligned with the template keys
//	String  the rendered template
//	Object  key -> value
//
// # Resolution Order
//
// Values are resolved in priority order:
//
//  1. Display text ("10px", "1, 2 m") that does not evaluate on its own but
//     fully matches the template: one value per capture group.
//  2. Scalar-like input ("1+1", "10, 20", [1, 2]): positional, with the last
//     value broadcast to any remaining keys.
//  3. Records: direct lookup, absent keys default to 0.
//
// Anything else fails with ErrPatternMismatch (text that matches nothing)
// or ErrInvalidInputType (every other shape).
//
// # Equivalence
//
// Equal decides whether two results describe the same value. It accepts
// either matching arrays or matching objects, so results produced through
// different template shapes still compare equal.
package number
