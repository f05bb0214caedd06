package algebra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genalg/algebra"
)

// ExampleContext_complexNumbers declares A with A·A = -1 and computes with 1 + A.
func ExampleContext_complexNumbers() {
	ctx := algebra.NewContext(algebra.WithLogger(quietLogger()))
	a, _ := ctx.Term("A", 1)
	_ = ctx.AddRule("A", "A", algebra.Real(-1))

	z := a.Add(algebra.Real(1))
	sq, _ := z.Mul(algebra.Elem(z))
	cube, _ := z.Pow(3)
	inv, _ := algebra.ScalarDiv(1, z)

	fmt.Println("z   =", z)
	fmt.Println("z^2 =", sq)
	fmt.Println("z^3 =", cube)
	fmt.Println("1/z =", inv)

	// Output:
	// z   = + 1 + A
	// z^2 = + 2 A
	// z^3 = - 2 + 2 A
	// 1/z = + 0.5 - 0.5 A
}

// ExampleElement_Inverse shows the dual numbers, where ε·ε = 0 makes ε a zero divisor.
func ExampleElement_Inverse() {
	ctx := algebra.NewContext(algebra.WithLogger(quietLogger()))
	eps, _ := ctx.Term("e", 1)
	_ = ctx.AddRule("e", "e", algebra.Real(0))

	if _, err := eps.Inverse(); errors.Is(err, algebra.ErrNoInverse) {
		fmt.Println("e has no inverse")
	}
	inv, _ := eps.Add(algebra.Real(1)).Inverse()
	fmt.Println("1/(1+e) =", inv)

	// Output:
	// e has no inverse
	// 1/(1+e) = + 1 - e
}

// ExampleWithMissingRulePolicy makes an undeclared product an error.
func ExampleWithMissingRulePolicy() {
	ctx := algebra.NewContext(
		algebra.WithLogger(quietLogger()),
		algebra.WithMissingRulePolicy(algebra.MissingRuleFail),
	)
	a, _ := ctx.Term("A", 1)
	b, _ := ctx.Term("B", 1)

	_, err := a.Mul(algebra.Elem(b))
	fmt.Println(errors.Is(err, algebra.ErrMissingRule))

	// Output:
	// true
}
