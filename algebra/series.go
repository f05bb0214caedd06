// SPDX-License-Identifier: MIT

// File: series.go
// Role: sums, polynomials and truncated Taylor series of Elements.
//
// The series helpers only use ring operations, so they work in any algebra
// declared on a Context: with A·A = -1, Exp(A, n) approaches cos 1 + sin 1·A.
package algebra

// Sum returns the sum of elems (the zero element of c when elems is empty).
// Elements of another Context panic like Add does.
func Sum(c *Context, elems ...Element) Element {
	out := c.Zero()
	for _, e := range elems {
		out = out.Add(Elem(e))
	}

	return out
}

// Polynomial returns coeffs[0] + coeffs[1]·x + coeffs[2]·x² + … (Horner form).
//
// Errors:
//   - ErrMissingRule under MissingRuleFail.
//
// Complexity:
//   - len(coeffs)-1 products.
func Polynomial(x Element, coeffs []float64) (Element, error) {
	c := x.mustContext(opSeries)
	if len(coeffs) == 0 {
		return c.Zero(), nil
	}

	acc := c.Scalar(coeffs[len(coeffs)-1])
	var err error
	for i := len(coeffs) - 2; i >= 0; i-- {
		if acc, err = acc.Mul(Elem(x)); err != nil {
			return Element{}, err
		}
		acc = acc.Add(Real(coeffs[i]))
	}

	return acc, nil
}

// taylor builds n series coefficients: coeff(j) = sign(j)/j! for the powers
// j selected by pick, 0 elsewhere.
func taylor(degree int, pick func(j int) (float64, bool)) []float64 {
	coeffs := make([]float64, degree+1)
	fact := 1.0
	for j := 0; j <= degree; j++ {
		if j > 0 {
			fact *= float64(j)
		}
		if sign, ok := pick(j); ok {
			coeffs[j] = sign / fact
		}
	}

	return coeffs
}

// Exp returns Σ_{j<n} x^j / j!.
func Exp(x Element, n int) (Element, error) {
	if n <= 0 {
		return x.mustContext(opSeries).Zero(), nil
	}

	return Polynomial(x, taylor(n-1, func(int) (float64, bool) { return 1, true }))
}

// Sin returns Σ_{i<n} (-1)^i x^(2i+1) / (2i+1)!.
func Sin(x Element, n int) (Element, error) {
	if n <= 0 {
		return x.mustContext(opSeries).Zero(), nil
	}

	return Polynomial(x, taylor(2*n-1, func(j int) (float64, bool) {
		if j%2 == 0 {
			return 0, false
		}
		if (j/2)%2 == 1 {
			return -1, true
		}
		return 1, true
	}))
}

// Cos returns Σ_{i<n} (-1)^i x^(2i) / (2i)!.
func Cos(x Element, n int) (Element, error) {
	if n <= 0 {
		return x.mustContext(opSeries).Zero(), nil
	}

	return Polynomial(x, taylor(2*n-2, func(j int) (float64, bool) {
		if j%2 == 1 {
			return 0, false
		}
		if (j/2)%2 == 1 {
			return -1, true
		}
		return 1, true
	}))
}
