package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// infinity is the literal FormatNumber writes for an infinite value.
const infinity = "Infinity"

// Expression errors.
var (
	// ErrExpression is wrapped by every evaluation failure.
	ErrExpression = errors.New("invalid expression")

	// ErrUnbalanced reports a missing '(' or ')'.
	ErrUnbalanced = fmt.Errorf("%w: unbalanced parentheses", ErrExpression)
)

// Error describes where and why an expression failed to evaluate.
type Error struct {
	// Input is the expression as given.
	Input string

	// Offset is the byte offset of the failure (len(Input) for end of input).
	Offset int

	// Reason is a short description of the failure.
	Reason string

	// Err is ErrExpression or a more specific error wrapping it.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s at offset %d in %q", e.Err, e.Reason, e.Offset, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Operator precedence levels.
const (
	precBarrier = 0
	precAdd     = 1
	precMul     = 2
	precUnary   = 3
)

type operator byte

const (
	opAdd    operator = '+'
	opSub    operator = '-'
	opMul    operator = '*'
	opDiv    operator = '/'
	opParen  operator = '('
	opNegate operator = 'n'
)

func (o operator) precedence() int {
	switch o {
	case opMul, opDiv:
		return precMul
	case opAdd, opSub:
		return precAdd
	case opNegate:
		return precUnary
	default:
		return precBarrier
	}
}

// Evaluate evaluates an arithmetic expression and returns its value.
// Whitespace may appear around operators and parentheses but not inside a
// number. The literal "Infinity" evaluates to +Inf.
func Evaluate(input string) (float64, error) {
	if err := checkBalance(input); err != nil {
		return 0, err
	}
	e := &evaluator{input: input, expectOperand: true}
	return e.run()
}

// MustEvaluate is like Evaluate but panics on error.
func MustEvaluate(input string) float64 {
	v, err := Evaluate(input)
	if err != nil {
		panic(err)
	}
	return v
}

// checkBalance rejects expressions whose parentheses do not pair up.
func checkBalance(input string) error {
	depth := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &Error{Input: input, Offset: i, Reason: "unexpected ')'", Err: ErrUnbalanced}
			}
		}
	}
	if depth != 0 {
		return &Error{Input: input, Offset: len(input), Reason: "missing ')'", Err: ErrUnbalanced}
	}
	return nil
}

type evaluator struct {
	input    string
	operands []float64
	ops      []operator

	// num accumulates the digits of the number being scanned.
	num       []byte
	numOffset int

	// expectOperand is true where a number, '(' or unary operator may appear.
	expectOperand bool
}

func (e *evaluator) fail(offset int, format string, args ...any) error {
	return &Error{Input: e.input, Offset: offset, Reason: fmt.Sprintf(format, args...), Err: ErrExpression}
}

func (e *evaluator) run() (float64, error) {
	for i := 0; i < len(e.input); i++ {
		c := e.input[i]
		switch {
		case isSpace(c):
			// Whitespace ends a number; "1 2" is two operands, not 12.
			if err := e.flush(); err != nil {
				return 0, err
			}

		case isDigit(c) || c == '.':
			if !e.expectOperand && len(e.num) == 0 {
				return 0, e.fail(i, "missing operator before number")
			}
			if len(e.num) == 0 {
				e.numOffset = i
			}
			e.num = append(e.num, c)
			e.expectOperand = false

		case c == '+' || c == '-' || c == '*' || c == '/':
			if err := e.flush(); err != nil {
				return 0, err
			}
			if e.expectOperand {
				switch c {
				case '-':
					e.ops = append(e.ops, opNegate)
					continue
				case '+':
					continue
				}
				return 0, e.fail(i, "operator %q missing left operand", c)
			}
			op := operator(c)
			for len(e.ops) > 0 && e.top().precedence() >= op.precedence() {
				if err := e.apply(i); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, op)
			e.expectOperand = true

		case c == '(':
			if !e.expectOperand {
				return 0, e.fail(i, "missing operator before '('")
			}
			e.ops = append(e.ops, opParen)

		case c == ')':
			if err := e.flush(); err != nil {
				return 0, err
			}
			if e.expectOperand {
				return 0, e.fail(i, "missing operand before ')'")
			}
			for len(e.ops) > 0 && e.top() != opParen {
				if err := e.apply(i); err != nil {
					return 0, err
				}
			}
			// No matching '(' is a no-op; checkBalance has already rejected it.
			if len(e.ops) > 0 {
				e.ops = e.ops[:len(e.ops)-1]
			}

		case strings.HasPrefix(e.input[i:], infinity):
			if !e.expectOperand {
				return 0, e.fail(i, "missing operator before %s", infinity)
			}
			e.operands = append(e.operands, math.Inf(1))
			e.expectOperand = false
			i += len(infinity) - 1

		default:
			return 0, e.fail(i, "unexpected character %q", c)
		}
	}

	if err := e.flush(); err != nil {
		return 0, err
	}
	if e.expectOperand {
		return 0, e.fail(len(e.input), "missing operand")
	}
	for len(e.ops) > 0 {
		if err := e.apply(len(e.input)); err != nil {
			return 0, err
		}
	}

	if len(e.operands) != 1 {
		return 0, e.fail(len(e.input), "no numeric result")
	}
	result := e.operands[0]
	if math.IsNaN(result) {
		return 0, e.fail(len(e.input), "result is not a number")
	}
	return result, nil
}

// flush pushes the pending number token, if any, onto the operand stack.
func (e *evaluator) flush() error {
	if len(e.num) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(string(e.num), 64)
	if err != nil {
		return e.fail(e.numOffset, "malformed number %q", e.num)
	}
	e.operands = append(e.operands, v)
	e.num = e.num[:0]
	return nil
}

func (e *evaluator) top() operator {
	return e.ops[len(e.ops)-1]
}

// apply pops one operator and applies it to the operand stack.
func (e *evaluator) apply(offset int) error {
	op := e.top()
	e.ops = e.ops[:len(e.ops)-1]

	switch op {
	case opParen:
		return e.fail(offset, "missing ')'")

	case opNegate:
		if len(e.operands) < 1 {
			return e.fail(offset, "unary minus missing operand")
		}
		e.operands[len(e.operands)-1] = -e.operands[len(e.operands)-1]
		return nil
	}

	if len(e.operands) < 2 {
		return e.fail(offset, "operator %q missing operand", byte(op))
	}
	a := e.operands[len(e.operands)-2]
	b := e.operands[len(e.operands)-1]
	e.operands = e.operands[:len(e.operands)-2]

	var r float64
	switch op {
	case opAdd:
		r = a + b
	case opSub:
		r = a - b
	case opMul:
		r = a * b
	case opDiv:
		r = a / b
	}
	e.operands = append(e.operands, r)
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
