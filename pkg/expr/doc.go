// Package expr evaluates arithmetic expressions typed into numeric inputs.
//
// The grammar is deliberately small: decimal numbers, the four basic
// operators, parentheses, and unary minus. Whitespace anywhere in the input
// is ignored, so "1 2" reads as 12.
//
// # Evaluation
//
// Expressions are evaluated in a single left-to-right scan using an operand
// stack and an operator stack (shunting-yard). Operator precedence:
//
//	unary -   3
//	* /       2
//	+ -       1
//	(         0 (barrier)
//
// Binary operators are left-associative.
//
// # Errors
//
// Evaluate never panics. Malformed input returns an *Error that wraps
// ErrExpression; unbalanced parentheses are rejected up front with
// ErrUnbalanced. Division by zero is not an error: it yields a signed
// infinity, which callers clamp like any other value.
package expr
