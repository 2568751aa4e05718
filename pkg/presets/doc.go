// Package presets provides ready-made control definitions for common
// CSS-like quantities.
//
// The definitions live in presets.yaml and are compiled into
// presets_gen.go by numval-gen:
//
//	ctrl, err := interaction.New(presets.MustLookup(presets.NameOpacity).Config())
//
//go:generate go run ../../cmd/numval-gen -input presets.yaml -output presets_gen.go -package presets
package presets
