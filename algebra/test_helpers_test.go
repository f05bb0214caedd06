// SPDX-License-Identifier: MIT
// Package algebra_test contains shared fixtures for the algebra tests.
package algebra_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genalg/algebra"
)

// quietLogger discards every record.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureLogger records every record at Debug and above into buf.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewCtx builds a Context with a quiet logger plus opts.
func NewCtx(opts ...algebra.Option) *algebra.Context {
	return algebra.NewContext(append([]algebra.Option{algebra.WithLogger(quietLogger())}, opts...)...)
}

// MustTerm returns value·name or fails the test.
func MustTerm(t testing.TB, c *algebra.Context, name string, value float64) algebra.Element {
	t.Helper()
	e, err := c.Term(name, value)
	require.NoError(t, err)

	return e
}

// MustMap returns the element for m or fails the test.
func MustMap(t testing.TB, c *algebra.Context, m map[string]float64) algebra.Element {
	t.Helper()
	e, err := c.FromMap(m)
	require.NoError(t, err)

	return e
}

// MustMul returns a·b or fails the test.
func MustMul(t testing.TB, a, b algebra.Element) algebra.Element {
	t.Helper()
	out, err := a.Mul(algebra.Elem(b))
	require.NoError(t, err)

	return out
}

// MustRule declares left·right = result or fails the test.
func MustRule(t testing.TB, c *algebra.Context, left, right string, result algebra.Operand) {
	t.Helper()
	require.NoError(t, c.AddRule(left, right, result))
}

// RequireElem fails unless got equals want exactly.
func RequireElem(t testing.TB, want, got algebra.Element) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

// RequireApprox fails unless got equals want within tol.
func RequireApprox(t testing.TB, want, got algebra.Element, tol float64) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, tol), "want %s, got %s (tol %g)", want, got, tol)
}

// complexCtx returns a Context where A·A = -1, and the element A.
func complexCtx(t testing.TB, opts ...algebra.Option) (*algebra.Context, algebra.Element) {
	t.Helper()
	c := NewCtx(opts...)
	a := MustTerm(t, c, "A", 1)
	MustRule(t, c, "A", "A", algebra.Real(-1))

	return c, a
}
