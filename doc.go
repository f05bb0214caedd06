// Package genalg is a runtime-defined generalized algebra engine: declare
// symbolic basis elements, supply their multiplication table, and compute
// with real linear combinations of them.
//
// Familiar number systems fall out of a few rules:
//
//	complex        A·A = -1
//	split-complex  J·J =  1
//	dual numbers   e·e =  0
//	quaternions    i·i = j·j = k·k = -1, i·j = k, j·i = -k, …
//
// Under the hood, everything is organized under these subpackages:
//
//	algebra/             — Context (basis + multiplication table), Element arithmetic, inversion, series
//	algebra/gonumsolver/ — gonum-backed linear solver for Inverse
//	matrix/              — Dense matrix, LU with partial pivoting, Solve, MatVec
//
// Quick example:
//
//	ctx := algebra.NewContext()
//	a, _ := ctx.Term("A", 1)
//	_ = ctx.AddRule("A", "A", algebra.Real(-1))
//	inv, _ := algebra.ScalarDiv(1, a.Add(algebra.Real(1))) // + 0.5 - 0.5 A
//
//	go get github.com/katalvlaran/genalg
package genalg
