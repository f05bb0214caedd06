// SPDX-License-Identifier: MIT

// File: arith.go
// Role: ring operations on Elements.
//
// Operand handling:
//   - Real(s) on the right behaves as s·1.
//   - The zero Operand, an unbound receiver and elements of another Context
//     are programmer errors and panic (wrapping ErrInvalidOperand or
//     ErrForeignContext).
//
// Determinism:
//   - Mul visits the ordered pairs (left term, right term) in basis order, each once.
package algebra

import "fmt"

// mustContext returns e's Context or panics for an unbound receiver.
func (e Element) mustContext(tag string) *Context {
	if e.ctx == nil {
		operandPanic(tag, fmt.Errorf("unbound receiver: %w", ErrInvalidOperand))
	}

	return e.ctx
}

// resolve converts o to an element of e's Context or panics.
func (e Element) resolve(tag string, o Operand) (*Context, Element) {
	c := e.mustContext(tag)
	other, err := c.operandElement(o)
	if err != nil {
		operandPanic(tag, err)
	}

	return c, other
}

// Add returns e + o. Keys are united and coefficients summed.
//
// Complexity:
//   - Time O(|e| + |o|).
func (e Element) Add(o Operand) Element {
	c, other := e.resolve(opAdd, o)

	return c.sum(e, other, 1)
}

// Sub returns e - o.
func (e Element) Sub(o Operand) Element {
	c, other := e.resolve(opSub, o)

	return c.sum(e, other, -1)
}

// sum returns a + sign·b.
func (c *Context) sum(a, b Element, sign float64) Element {
	raw := make(map[string]float64, len(a.terms)+len(b.terms))
	for n, v := range a.terms {
		raw[n] = v
	}
	for n, v := range b.terms {
		raw[n] += sign * v
	}

	return c.wrap(raw)
}

// Neg returns -e.
func (e Element) Neg() Element { return e.Scale(-1) }

// Scale returns s·e. Coefficients that become zero are dropped.
func (e Element) Scale(s float64) Element {
	c := e.mustContext(opMul)
	raw := make(map[string]float64, len(e.terms))
	for n, v := range e.terms {
		raw[n] = v * s
	}

	return c.wrap(raw)
}

// Mul returns e·o.
//
// Implementation:
//   - Stage 1: scalar operand → Scale.
//   - Stage 2: for every (l, r) in terms(e) × terms(o), accumulate
//     table[l.Name, r.Name] · l.Coeff · r.Coeff under one read lock.
//   - Stage 3: apply the missing-rule policy to every undeclared pair (lock released).
//
// Errors:
//   - ErrMissingRule under MissingRuleFail.
//
// Complexity:
//   - Time O(|e|·|o|·r), r = largest rule result length.
func (e Element) Mul(o Operand) (Element, error) {
	c, other := e.resolve(opMul, o)
	if o.IsScalar() {
		return e.Scale(o.scalar), nil
	}

	out, err := c.product(e, other)
	if err != nil {
		return Element{}, algebraErrorf(opMul, err)
	}

	return out, nil
}

// product expands a·b bilinearly over the multiplication table.
func (c *Context) product(a, b Element) (Element, error) {
	left, right := a.Terms(), b.Terms()
	raw := make(map[string]float64)
	var missing []pairKey

	c.mu.RLock()
	for _, l := range left {
		for _, r := range right {
			res, ok := c.table[pairKey{l.Name, r.Name}]
			if !ok {
				missing = append(missing, pairKey{l.Name, r.Name})
				continue
			}
			w := l.Coeff * r.Coeff
			for n, v := range res.terms {
				raw[n] += v * w
			}
		}
	}
	c.mu.RUnlock()

	for _, k := range missing {
		if err := c.reportMissing(k.left, k.right); err != nil {
			return Element{}, err
		}
	}

	return c.wrap(raw), nil
}

// Div returns e / o: e·(1/s) for a scalar, e·o⁻¹ for an element.
//
// Errors:
//   - ErrDivisionByZero for Real(0).
//   - ErrNoInverse when o is not invertible.
//   - ErrMissingRule under MissingRuleFail.
func (e Element) Div(o Operand) (Element, error) {
	_, other := e.resolve(opDiv, o)
	if o.IsScalar() {
		if o.scalar == 0 {
			return Element{}, algebraErrorf(opDiv, ErrDivisionByZero)
		}
		return e.Scale(1 / o.scalar), nil
	}

	inv, err := other.Inverse()
	if err != nil {
		return Element{}, algebraErrorf(opDiv, err)
	}
	out, err := e.Mul(Elem(inv))
	if err != nil {
		return Element{}, algebraErrorf(opDiv, err)
	}

	return out, nil
}

// ScalarDiv returns s / e, i.e. s·e⁻¹.
//
// Errors:
//   - ErrNoInverse, ErrMissingRule (policy dependent).
func ScalarDiv(s float64, e Element) (Element, error) {
	e.mustContext(opScalarDiv)
	inv, err := e.Inverse()
	if err != nil {
		return Element{}, algebraErrorf(opScalarDiv, err)
	}

	return inv.Scale(s), nil
}

// Pow returns e^k for an integer k.
//
// Implementation:
//   - k ≥ 0: multiply 1 by e, k times (k = 0 gives exactly 1).
//   - k < 0: multiply 1 by e⁻¹, |k| times (e⁻¹ computed once).
//
// Errors:
//   - ErrNoInverse for k < 0 when e is not invertible.
//   - ErrMissingRule under MissingRuleFail.
//
// Complexity:
//   - |k| products, plus one inversion when k < 0.
func (e Element) Pow(k int) (Element, error) {
	c := e.mustContext(opPow)
	factor := e
	if k < 0 {
		inv, err := e.Inverse()
		if err != nil {
			return Element{}, algebraErrorf(opPow, err)
		}
		factor = inv
	}

	n := k
	if n < 0 {
		n = -n
	}
	out := c.One()
	var err error
	for i := 0; i < n; i++ {
		if out, err = out.Mul(Elem(factor)); err != nil {
			return Element{}, algebraErrorf(opPow, err)
		}
	}

	return out, nil
}
