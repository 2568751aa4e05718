package number

import (
	"errors"
	"fmt"

	"github.com/numval/numval-go/pkg/value"
)

// Processing errors.
var (
	// ErrProcessing is the catch-all for failures outside the taxonomy below,
	// such as an invalid template.
	ErrProcessing = errors.New("processing failed")

	// ErrPatternMismatch is returned when text input neither evaluates nor
	// matches the template.
	ErrPatternMismatch = errors.New("input does not match pattern")

	// ErrInvalidInputType is returned when the input shape fits no resolution rule.
	ErrInvalidInputType = errors.New("invalid input type")
)

// PatternMismatchError reports text that could not be resolved.
type PatternMismatchError struct {
	// Input is the text that failed to match.
	Input string

	// Template is the template it was matched against.
	Template string
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("%v: %q against %q", ErrPatternMismatch, e.Input, e.Template)
}

func (e *PatternMismatchError) Unwrap() error {
	return ErrPatternMismatch
}

// InvalidInputTypeError reports an input whose shape could not be resolved.
type InvalidInputTypeError struct {
	// Kind is the shape of the rejected input.
	Kind value.Kind
}

func (e *InvalidInputTypeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidInputType, e.Kind)
}

func (e *InvalidInputTypeError) Unwrap() error {
	return ErrInvalidInputType
}
