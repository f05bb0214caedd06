// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the algebra
// solver: matrix-vector product, LU factorization with partial pivoting and
// the dense solve A·x = b built on top of it.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec = "MatVec"
	opLU     = "LU"
	opSolve  = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); ValidateVecLen(x, m.Cols()).
//   - Stage 2: Fast-path on *Dense (flat row-major dot products); otherwise At-based fallback.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, propagated At errors.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LUFactors holds a packed LU factorization P·A = L·U.
// L is unit lower triangular and shares storage with U (strict lower part).
type LUFactors struct {
	n    int
	lu   *Dense // packed L (below diagonal) and U (diagonal and above)
	perm []int  // perm[i] = original row placed at position i
}

// Size returns the order n of the factorized matrix.
func (f *LUFactors) Size() int { return f.n }

// Perm returns a copy of the row permutation.
func (f *LUFactors) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// L returns the unit lower triangular factor as a new Dense.
func (f *LUFactors) L() *Dense {
	out, _ := NewDense(f.n, f.n)
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
		out.data[i*f.n+i] = 1.0
	}

	return out
}

// U returns the upper triangular factor as a new Dense.
func (f *LUFactors) U() *Dense {
	out, _ := NewDense(f.n, f.n)
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = i; j < f.n; j++ {
			out.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
	}

	return out
}

// LU computes the factorization P·A = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a packed Dense buffer.
//   - Stage 2: For each column k pick the row with the largest |a(i,k)|, i>=k
//     (first one wins on ties), swap it up and eliminate below the pivot.
//
// Behavior highlights:
//   - A pivot is unusable when |p| <= eps*max|a(i,j)| (see WithEpsilon); the
//     all-zero matrix is always singular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Fixed column order and first-max pivot choice.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	// Copy input and record the largest magnitude for the relative tolerance.
	var (
		i, j, k int
		v, amax float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = a.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opLU, err)
			}
			amax = math.Max(amax, math.Abs(v))
		}
	}
	if amax == 0 {
		return nil, matrixErrorf(opLU, ErrSingular)
	}
	tol := o.eps * amax

	perm := make([]int, n)
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	var (
		p           int
		best, pivot float64
		factor      float64
	)
	for k = 0; k < n; k++ {
		// Select pivot row
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Eliminate below the pivot
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / pivot
			a.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return &LUFactors{n: n, lu: a, perm: perm}, nil
}

// Solve solves A·x = b using the stored factorization.
//
// Implementation:
//   - Stage 1: permute b; forward substitution L·y = P·b.
//   - Stage 2: backward substitution U·x = y.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != n; ErrNaNInf for non-finite b.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := f.n
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// Forward substitution with unit diagonal.
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}

	return x, nil
}

// Solve returns x such that m·x = b, factorizing m with LU.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}
