// Package matrix offers a small dense linear-algebra toolkit.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Validators shared by every kernel (nil, square, vector length).
//   - LU factorization with partial pivoting, Solve for A·x = b, and MatVec.
//
// It is the default linear-solve backend of the algebra package, where the
// multiplicative inverse of an element is found by solving one k×k system
// over the current basis. Systems of that kind are small and dense, so a
// flat row-major buffer and an O(n³) factorization are the right fit.
//
// See the examples in this package and algebra for usage patterns.
package matrix
