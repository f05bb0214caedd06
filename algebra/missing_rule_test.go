// SPDX-License-Identifier: MIT
package algebra_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genalg/algebra"
)

func TestMissingRule_SkipDropsTheTerm(t *testing.T) {
	var (
		buf    bytes.Buffer
		missed [][2]string
	)
	c := algebra.NewContext(
		algebra.WithLogger(captureLogger(&buf)),
		algebra.WithMissingRuleHook(func(l, r string) { missed = append(missed, [2]string{l, r}) }),
	)
	a := MustTerm(t, c, "A", 1)
	b := MustTerm(t, c, "B", 1)
	MustRule(t, c, "A", "A", algebra.Real(-1))

	// (1 + A)(A + B) = A + B + A·A + [A·B missing] = -1 + A + B
	got := MustMul(t, a.Add(algebra.Real(1)), a.Add(algebra.Elem(b)))

	RequireElem(t, MustMap(t, c, map[string]float64{"1": -1, "A": 1, "B": 1}), got)
	require.Equal(t, [][2]string{{"A", "B"}}, missed)
	require.Contains(t, buf.String(), "missing product")
	require.Contains(t, buf.String(), "left=A")
	require.Contains(t, buf.String(), "right=B")
}

func TestMissingRule_FailPolicy(t *testing.T) {
	c := NewCtx(algebra.WithMissingRulePolicy(algebra.MissingRuleFail))
	a := MustTerm(t, c, "A", 1)
	b := MustTerm(t, c, "B", 1)

	_, err := a.Mul(algebra.Elem(b))
	require.ErrorIs(t, err, algebra.ErrMissingRule)

	_, err = a.Pow(2)
	require.ErrorIs(t, err, algebra.ErrMissingRule)

	MustRule(t, c, "A", "B", algebra.Real(1))
	RequireElem(t, c.One(), MustMul(t, a, b))
}

func TestMissingRule_HookMayDeclareTheRule(t *testing.T) {
	var c *algebra.Context
	c = NewCtx(algebra.WithMissingRuleHook(func(l, r string) {
		require.NoError(t, c.AddRule(l, r, algebra.Real(0)))
	}))
	a := MustTerm(t, c, "A", 1)

	require.True(t, MustMul(t, a, a).IsZero())
	require.True(t, c.HasRule("A", "A"))
}
