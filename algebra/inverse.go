// SPDX-License-Identifier: MIT

// File: inverse.go
// Role: Inversion Solver.
//
// For d with basis snapshot e_1..e_k, Inverse solves M·s = u where
// M[row][col] is the coefficient of e_row in e_col·d and u is the unit
// vector of "1"; the inverse is Σ s_i·e_i. The same snapshot order is used
// for M, u and the recombination.
//
// Complexity: O(k³) in the number k of declared basis names, including names
// unrelated to d.
package algebra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/genalg/matrix"
)

// LinearSolver solves the square dense system a·x = b.
// Implementations MUST return an error wrapping matrix.ErrSingular when a
// has no unique solution.
type LinearSolver interface {
	Solve(a matrix.Matrix, b []float64) ([]float64, error)
}

// LUSolver is the default LinearSolver: LU with partial pivoting from the
// matrix package.
type LUSolver struct {
	opts []matrix.Option
}

// NewLUSolver returns an LUSolver applying opts to every solve.
func NewLUSolver(opts ...matrix.Option) *LUSolver {
	return &LUSolver{opts: opts}
}

// Solve implements LinearSolver.
func (s *LUSolver) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	return matrix.Solve(a, b, s.opts...)
}

// Inverse returns the element x with x·e = 1 over the current basis.
//
// Implementation:
//   - Stage 1: snapshot the basis; build M column by column from e_col·e.
//   - Stage 2: solve M·s = u with the Context's LinearSolver.
//   - Stage 3: reject the solution when ‖M·s − u‖∞ exceeds the tolerance.
//   - Stage 4: recombine Σ s_i·e_i.
//
// Errors:
//   - ErrNoInverse when the system is singular (including e == 0).
//   - ErrMissingRule under MissingRuleFail.
//
// Complexity:
//   - Time O(k³), Space O(k²), k = Context size.
func (e Element) Inverse() (Element, error) {
	c := e.mustContext(opInverse)
	basis := c.Basis()
	k := len(basis)

	m, err := matrix.NewDense(k, k)
	if err != nil {
		return Element{}, algebraErrorf(opInverse, err)
	}
	var v Element
	for col, name := range basis {
		x := Element{ctx: c, terms: map[string]float64{name: 1}}
		if v, err = c.product(x, e); err != nil {
			return Element{}, algebraErrorf(opInverse, err)
		}
		for row, rname := range basis {
			if err = m.Set(row, col, v.terms[rname]); err != nil {
				return Element{}, algebraErrorf(opInverse, err)
			}
		}
	}

	u := make([]float64, k)
	for row, name := range basis {
		if name == Unit {
			u[row] = 1
		}
	}

	s, err := c.opts.solver.Solve(m, u)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			c.opts.logger.Debug("no inverse", slog.Any("element", e), slog.Int("basis_size", k))
			return Element{}, algebraErrorf(opInverse, ErrNoInverse)
		}
		return Element{}, algebraErrorf(opInverse, err)
	}

	if res := residual(m, s, u); res > c.opts.tol {
		c.opts.logger.Debug("no inverse",
			slog.Any("element", e), slog.Int("basis_size", k), slog.Float64("residual", res))
		return Element{}, algebraErrorf(opInverse, fmt.Errorf("residual %g: %w", res, ErrNoInverse))
	}

	raw := make(map[string]float64, k)
	for i, name := range basis {
		raw[name] = s[i]
	}

	return c.wrap(raw), nil
}

// residual returns ‖m·s − u‖∞, or +Inf if the product cannot be formed.
func residual(m matrix.Matrix, s, u []float64) float64 {
	got, err := matrix.MatVec(m, s)
	if err != nil {
		return math.Inf(1)
	}
	var worst float64
	for i := range got {
		d := math.Abs(got[i] - u[i])
		if math.IsNaN(d) {
			return math.Inf(1)
		}
		worst = math.Max(worst, d)
	}

	return worst
}
