package rep_test

import (
	"fmt"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/rep"
	"github.com/katalvlaran/sl2word/word"
)

// ExampleEvaluateWord evaluates a five-letter word at z = 1+2i with
// 100-bit arithmetic and prints the trace rounded to five digits.
func ExampleEvaluateWord() {
	z := bigcplx.FromFloat64(1, 2, 100)
	w, _ := word.Parse("aBabb")

	_, tr, err := rep.EvaluateWord(w, rep.Standard{}, z)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("trace =", tr.Format(5))
	// Output:
	// trace = (-10.500 -18.500)
}

// ExampleTrivial shows the substitution family: every word collapses to
// the identity, so the trace is exactly 2.
func ExampleTrivial() {
	z := bigcplx.FromFloat64(1, 2, 64)
	w, _ := word.Parse("abAB")

	_, tr, _ := rep.EvaluateWord(w, rep.Trivial{}, z)
	fmt.Println("trace =", tr.Format(5))
	// Output:
	// trace = (2.0000 0)
}
