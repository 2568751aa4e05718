// Package constraint rounds and clamps numeric values.
//
// Rounding is applied first, to a fixed number of fractional digits, and the
// rounded value is then clamped into [Min, Max]. Values in a mapping are
// constrained independently; there is no correlation between keys.
package constraint
