// Package algebra is a generalized-algebra engine: declare symbolic basis
// elements, define how they multiply, and compute with formal linear
// combinations of them.
//
// A Context owns the basis (the unit "1" plus every declared name, in
// declaration order) and the multiplication table (structure constants).
// Elements are immutable real linear combinations bound to one Context.
//
//	ctx := algebra.NewContext()
//	a, _ := ctx.Term("A", 1)
//	_ = ctx.AddRule("A", "A", algebra.Real(-1)) // A·A = -1: A is i
//
//	z := a.Add(algebra.Real(1))            // 1 + A
//	z2, _ := z.Mul(algebra.Elem(z))        // 2A
//	inv, _ := algebra.ScalarDiv(1, z)      // 0.5 - 0.5A
//
// Rules:
//
//   - Declaring a basis name adds 1·X = X and X·1 = X.
//   - AddRule(X, Y, r) also fills Y·X = r while Y·X is undeclared, so
//     declaration order matters for non-commutative tables; AddDirectedRule
//     never mirrors.
//   - A product with no declared rule is handled by the MissingRulePolicy:
//     MissingRuleSkip (default) logs it and drops the term, MissingRuleFail
//     returns ErrMissingRule.
//
// Inverse solves one k×k linear system over the whole basis, so its cost
// grows with every name ever declared in the Context. Singular systems
// yield ErrNoInverse, which Div, ScalarDiv and negative Pow propagate.
//
// Concurrency: a Context is safe for concurrent use; declarations are
// serialized behind a single writer lock.
package algebra
