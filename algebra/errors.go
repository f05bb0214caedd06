// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// Every message is prefixed with "algebra: ..."; operations wrap them with an
// operation tag (see algebraErrorf) and callers match with errors.Is.
//
// Recoverable conditions (ErrMissingRule under MissingRuleFail, ErrNoInverse,
// ErrDivisionByZero) are returned as errors. Programmer errors in arithmetic
// (ErrInvalidOperand) panic at the call site.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName indicates a basis name that is empty after whitespace removal.
	ErrEmptyName = errors.New("algebra: empty basis name")

	// ErrMissingRule indicates that no product is declared for an ordered pair
	// of basis names. Returned by Lookup, and by Mul under MissingRuleFail.
	ErrMissingRule = errors.New("algebra: missing multiplication rule")

	// ErrNoInverse indicates that the element has no multiplicative inverse
	// over the current basis (the inversion system is singular).
	ErrNoInverse = errors.New("algebra: element has no inverse")

	// ErrDivisionByZero indicates division by the real scalar 0.
	ErrDivisionByZero = errors.New("algebra: division by zero scalar")

	// ErrInvalidOperand indicates an operand that is neither a real scalar nor
	// an element bound to a context (e.g. the zero Operand or Element value).
	ErrInvalidOperand = errors.New("algebra: invalid operand")

	// ErrForeignContext indicates an element bound to a different Context.
	ErrForeignContext = errors.New("algebra: element belongs to another context")
)

// Operation tags for uniform error wrapping.
const (
	opDeclare   = "DeclareBasis"
	opAddRule   = "AddRule"
	opLookup    = "Lookup"
	opTerm      = "Term"
	opFromMap   = "FromMap"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opPow       = "Pow"
	opInverse   = "Inverse"
	opScalarDiv = "ScalarDiv"
	opSeries    = "Series"
)

// algebraErrorf wraps err with an operation tag, preserving it for errors.Is.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// operandPanic reports a programmer error at the arithmetic call site.
func operandPanic(tag string, err error) {
	panic(algebraErrorf(tag, err))
}
