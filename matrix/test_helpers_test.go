// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/genalg/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom builds a *Dense from literal rows or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// CompareClose fails unless m matches want entrywise within tol.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); math.Abs(got-want[i][j]) > tol {
				t.Fatalf("[%d,%d] = %v, want %v (tol %g)", i, j, got, want[i][j], tol)
			}
		}
	}
}

// product returns a·b for square Dense operands (test-only reference kernel).
func product(t *testing.T, a, b matrix.Matrix) [][]float64 {
	t.Helper()
	n := a.Rows()
	out := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				out[i][j] += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
		}
	}

	return out
}
