// Package config loads control definitions from YAML.
//
// A file lists named controls with their pattern, constraints and step
// sizes:
//
//	controls:
//	  - name: padding
//	    pattern: "{value}px"
//	    min: 0
//	    max: 200
//	    decimal: 0
//	    step: 1
//	    shift_step: 10
//	    value: 12
//	  - name: offset
//	    pattern: "{x}, {y}"
//	    axis: y
//	    value: {x: 0, y: 0}
//
// Absent min and max are unbounded, an absent decimal means
// constraint.DefaultDecimal, and absent steps use the interaction defaults.
package config
