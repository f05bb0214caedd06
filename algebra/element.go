// SPDX-License-Identifier: MIT

// File: element.go
// Role: Element construction, cleaning and read-only accessors.
//
// Invariants:
//   - An Element never stores a coefficient with |c| <= pruneEps (0 by default:
//     exact zeros only). The empty map is the additive identity.
//   - Every key is a basis name declared in the owning Context.
//   - Elements are never mutated after construction; operations return new values.
package algebra

import (
	"fmt"
	"math"
)

// Element is a formal real linear combination of basis names of one Context.
// The zero Element value is unbound and invalid as an operand; use
// (*Context).Zero for the additive identity.
type Element struct {
	ctx   *Context
	terms map[string]float64
}

// Term is one (name, coefficient) pair of an Element.
type Term struct {
	Name  string
	Coeff float64
}

// wrap cleans raw and binds it to c. raw is owned by the result.
func (c *Context) wrap(raw map[string]float64) Element {
	eps := c.opts.pruneEps
	for n, v := range raw {
		if v == 0 || math.Abs(v) <= eps {
			delete(raw, n)
		}
	}

	return Element{ctx: c, terms: raw}
}

// unitElement returns s·1 (the zero element when s is 0).
func (c *Context) unitElement(s float64) Element {
	return c.wrap(map[string]float64{Unit: s})
}

// Term returns value·name, declaring name when unseen.
//
// Errors:
//   - ErrEmptyName.
func (c *Context) Term(name string, value float64) (Element, error) {
	b, err := c.DeclareBasis(name)
	if err != nil {
		return Element{}, algebraErrorf(opTerm, err)
	}

	return c.wrap(map[string]float64{b.name: value}), nil
}

// FromMap returns the element with the given coefficients. Zero entries are
// dropped; names are normalized (whitespace removed, colliding keys summed)
// and unseen ones are declared in lexicographic order.
//
// Errors:
//   - ErrEmptyName if any key is empty after normalization.
func (c *Context) FromMap(m map[string]float64) (Element, error) {
	raw := make(map[string]float64, len(m))
	names := make([]string, 0, len(m))
	for k, v := range m {
		n, err := normalizeName(k)
		if err != nil {
			return Element{}, algebraErrorf(opFromMap, fmt.Errorf("key %q: %w", k, err))
		}
		if _, seen := raw[n]; !seen {
			names = append(names, n)
		}
		raw[n] += v
	}
	c.declareAll(names)

	return c.wrap(raw), nil
}

// One returns the unit element 1.
func (c *Context) One() Element { return c.unitElement(1) }

// Zero returns the additive identity.
func (c *Context) Zero() Element { return Element{ctx: c, terms: map[string]float64{}} }

// Scalar returns s·1.
func (c *Context) Scalar(s float64) Element { return c.unitElement(s) }

// Context returns the owning Context (nil for the zero Element value).
func (e Element) Context() *Context { return e.ctx }

// Coeff returns the coefficient of name (0 when absent).
func (e Element) Coeff(name string) float64 { return e.terms[name] }

// Len returns the number of nonzero terms.
func (e Element) Len() int { return len(e.terms) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return len(e.terms) == 0 }

// Terms returns a snapshot of e's terms in basis order.
// Each call returns a fresh slice; nothing is shared with e.
func (e Element) Terms() []Term {
	out := make([]Term, 0, len(e.terms))
	for n, v := range e.terms {
		out = append(out, Term{Name: n, Coeff: v})
	}
	if e.ctx != nil {
		e.ctx.sortTerms(out)
	}

	return out
}

// Names returns the names of e's terms in basis order.
func (e Element) Names() []string {
	ts := e.Terms()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name
	}

	return out
}

// Single returns the only term of e, or false when e has zero or several terms.
func (e Element) Single() (Term, bool) {
	if len(e.terms) != 1 {
		return Term{}, false
	}
	for n, v := range e.terms {
		return Term{Name: n, Coeff: v}, true
	}

	return Term{}, false
}

// Magnitude returns the Euclidean norm of the coefficient vector.
func (e Element) Magnitude() float64 {
	var sum float64
	for _, v := range e.terms {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// Equal reports whether e and o belong to the same Context and have
// identical coefficient maps.
func (e Element) Equal(o Element) bool {
	if e.ctx != o.ctx || len(e.terms) != len(o.terms) {
		return false
	}
	for n, v := range e.terms {
		w, ok := o.terms[n]
		if !ok || w != v {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether e and o belong to the same Context and every
// coefficient differs by at most tol (missing names count as 0).
func (e Element) ApproxEqual(o Element, tol float64) bool {
	if e.ctx != o.ctx {
		return false
	}
	for n, v := range e.terms {
		if math.Abs(v-o.terms[n]) > tol {
			return false
		}
	}
	for n, w := range o.terms {
		if _, ok := e.terms[n]; !ok && math.Abs(w) > tol {
			return false
		}
	}

	return true
}
