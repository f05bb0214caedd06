// SPDX-License-Identifier: MIT

// Package gonumsolver provides an algebra.LinearSolver backed by the LU
// factorization of gonum.org/v1/gonum/mat.
//
// It is a drop-in alternative to the default algebra.LUSolver:
//
//	ctx := algebra.NewContext(algebra.WithSolver(gonumsolver.New()))
//
// Singular or ill-conditioned systems (condition number above MaxCond) are
// reported as matrix.ErrSingular, so Inverse maps them to algebra.ErrNoInverse.
package gonumsolver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/genalg/algebra"
	"github.com/katalvlaran/genalg/matrix"
)

// DefaultMaxCond is the largest accepted condition number.
const DefaultMaxCond = 1e12

const opSolve = "gonumsolver.Solve"

// Solver solves dense systems with gonum's partial-pivoting LU.
type Solver struct {
	// MaxCond bounds the condition number estimate; larger is treated as singular.
	MaxCond float64
}

var _ algebra.LinearSolver = (*Solver)(nil)

// New returns a Solver with DefaultMaxCond.
func New() *Solver { return &Solver{MaxCond: DefaultMaxCond} }

// Solve implements algebra.LinearSolver.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for bad shapes.
//   - matrix.ErrSingular when the factorization is singular or too ill-conditioned.
func (s *Solver) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	data := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opSolve, err)
			}
			data[i*n+j] = v
		}
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, data))

	maxCond := s.MaxCond
	if maxCond <= 0 {
		maxCond = DefaultMaxCond
	}
	if cond := lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > maxCond {
		return nil, fmt.Errorf("%s: condition %g: %w", opSolve, cond, matrix.ErrSingular)
	}

	rhs := make([]float64, n)
	copy(rhs, b)
	var x mat.VecDense
	if err = lu.SolveVecTo(&x, false, mat.NewVecDense(n, rhs)); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opSolve, err, matrix.ErrSingular)
	}

	out := make([]float64, n)
	for i = 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
