// SPDX-License-Identifier: MIT
package algebra

// operandKind tags the variant held by an Operand.
type operandKind uint8

const (
	operandInvalid operandKind = iota // zero Operand
	operandScalar
	operandElement
)

// Operand is the right-hand side of an arithmetic operation or the result of
// a rule: either a real scalar (Real) or an element (Elem). The zero Operand
// is invalid.
type Operand struct {
	kind   operandKind
	scalar float64
	elem   Element
}

// Real wraps a real scalar. As an element it stands for s·1.
func Real(s float64) Operand { return Operand{kind: operandScalar, scalar: s} }

// Elem wraps an element.
func Elem(e Element) Operand { return Operand{kind: operandElement, elem: e} }

// IsScalar reports whether o holds a real scalar.
func (o Operand) IsScalar() bool { return o.kind == operandScalar }

// operandElement converts o to an element of c.
//
// Errors:
//   - ErrInvalidOperand for the zero Operand or an unbound element.
//   - ErrForeignContext for an element of another Context.
func (c *Context) operandElement(o Operand) (Element, error) {
	switch o.kind {
	case operandScalar:
		return c.unitElement(o.scalar), nil
	case operandElement:
		if o.elem.ctx == nil {
			return Element{}, ErrInvalidOperand
		}
		if o.elem.ctx != c {
			return Element{}, ErrForeignContext
		}
		return o.elem, nil
	default:
		return Element{}, ErrInvalidOperand
	}
}
