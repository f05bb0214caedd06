// SPDX-License-Identifier: MIT

// Package algebra: functional configuration of a Context.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Every option affects behavior and is covered by tests.
package algebra

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/genalg/matrix"
)

// MissingRulePolicy selects what Mul does with a pair of basis names that
// has no declared product.
type MissingRulePolicy uint8

const (
	// MissingRuleSkip reports the pair (Warn log + hook) and treats its
	// contribution as zero; the surrounding computation continues.
	MissingRuleSkip MissingRulePolicy = iota

	// MissingRuleFail makes the whole product fail with ErrMissingRule.
	MissingRuleFail
)

// String returns the policy name.
func (p MissingRulePolicy) String() string {
	switch p {
	case MissingRuleSkip:
		return "skip"
	case MissingRuleFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMissingRulePolicy keeps products usable while rules are still
	// being declared interactively.
	DefaultMissingRulePolicy = MissingRuleSkip

	// DefaultTolerance bounds the residual ‖M·s − u‖∞ accepted by Inverse.
	DefaultTolerance = 1e-9

	// DefaultPruneEpsilon is the magnitude at or below which a coefficient is
	// dropped. Zero keeps the exact "remove 0 entries" cleaning rule.
	DefaultPruneEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger        = "algebra: WithLogger: logger must be non-nil"
	panicNilSolver        = "algebra: WithSolver: solver must be non-nil"
	panicBadPolicy        = "algebra: WithMissingRulePolicy: unknown policy"
	panicToleranceInvalid = "algebra: WithTolerance: tol must be finite, non-negative"
	panicPruneInvalid     = "algebra: WithPruneEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective Context configuration.
type Options struct {
	logger    *slog.Logger
	policy    MissingRulePolicy
	onMissing func(left, right string)
	solver    LinearSolver
	tol       float64
	pruneEps  float64
}

// WithLogger routes Context diagnostics (missing products at Warn, basis and
// rule declarations and failed inversions at Debug) to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// WithMissingRulePolicy selects MissingRuleSkip or MissingRuleFail.
func WithMissingRulePolicy(p MissingRulePolicy) Option {
	if p != MissingRuleSkip && p != MissingRuleFail {
		panic(panicBadPolicy)
	}

	return func(o *Options) { o.policy = p }
}

// WithMissingRuleHook registers fn to be called once per missing ordered pair
// encountered by Mul, under either policy. fn may call back into the Context
// (e.g. to declare the missing rule for later products).
func WithMissingRuleHook(fn func(left, right string)) Option {
	return func(o *Options) { o.onMissing = fn }
}

// WithSolver replaces the linear solver used by Inverse.
func WithSolver(s LinearSolver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(o *Options) { o.solver = s }
}

// WithTolerance sets the residual bound accepted by Inverse.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPruneEpsilon drops coefficients with |c| <= eps after every operation.
func WithPruneEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPruneInvalid)
	}

	return func(o *Options) { o.pruneEps = eps }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		logger:   slog.Default(),
		policy:   DefaultMissingRulePolicy,
		solver:   NewLUSolver(matrix.WithEpsilon(matrix.DefaultEpsilon)),
		tol:      DefaultTolerance,
		pruneEps: DefaultPruneEpsilon,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
