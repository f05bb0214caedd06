// SPDX-License-Identifier: MIT
package gonumsolver_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/genalg/algebra"
	"github.com/katalvlaran/genalg/algebra/gonumsolver"
	"github.com/katalvlaran/genalg/matrix"
)

// SolverSuite checks that the gonum backend agrees with the default LU backend.
type SolverSuite struct {
	suite.Suite
}

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func (s *SolverSuite) TestAgreesWithMatrixSolve() {
	t := s.T()
	a := dense(t, [][]float64{
		{0, 2, 1},
		{1, 1, 0},
		{3, 0, 4},
	})
	b := []float64{5, 3, 15}

	want, err := matrix.Solve(a, b)
	require.NoError(t, err)
	got, err := gonumsolver.New().Solve(a, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, got, 1e-12)
}

func (s *SolverSuite) TestSingular() {
	t := s.T()
	for _, rows := range [][][]float64{
		{{1, 2}, {2, 4}},
		{{0, 0}, {0, 0}},
	} {
		_, err := gonumsolver.New().Solve(dense(t, rows), []float64{1, 0})
		require.ErrorIs(t, err, matrix.ErrSingular)
	}
}

func (s *SolverSuite) TestShapeErrors() {
	t := s.T()
	_, err := gonumsolver.New().Solve(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = gonumsolver.New().Solve(dense(t, [][]float64{{1, 2, 3}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = gonumsolver.New().Solve(dense(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func (s *SolverSuite) TestZeroMaxCondFallsBackToDefault() {
	t := s.T()
	x, err := (&gonumsolver.Solver{}).Solve(dense(t, [][]float64{{2, 0}, {0, 4}}), []float64{2, 2})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0.5}, x, 1e-15)
}

func (s *SolverSuite) TestAsContextBackend() {
	t := s.T()
	ctx := algebra.NewContext(
		algebra.WithSolver(gonumsolver.New()),
		algebra.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	a, err := ctx.Term("A", 1)
	require.NoError(t, err)
	require.NoError(t, ctx.AddRule("A", "A", algebra.Real(-1)))
	j, err := ctx.Term("J", 1)
	require.NoError(t, err)
	require.NoError(t, ctx.AddRule("J", "J", algebra.Real(1)))
	require.NoError(t, ctx.AddRule("A", "J", algebra.Real(0)))

	z := a.Scale(4).Add(algebra.Real(3))
	inv, err := z.Inverse()
	require.NoError(t, err)
	want, err := ctx.FromMap(map[string]float64{"1": 3.0 / 25, "A": -4.0 / 25})
	require.NoError(t, err)
	require.True(t, want.ApproxEqual(inv, 1e-12), "got %s", inv)

	_, err = j.Add(algebra.Real(1)).Inverse()
	require.ErrorIs(t, err, algebra.ErrNoInverse)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
