package mat2_test

import (
	"fmt"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/mat2"
)

// ExampleMatrix_Mul multiplies the two integer shear matrices. Their
// product is exact, and swapping the operands changes the result.
func ExampleMatrix_Mul() {
	a := mat2.New(
		bigcplx.FromFloat64(1, 0, 64), bigcplx.FromFloat64(1, 0, 64),
		bigcplx.FromFloat64(0, 0, 64), bigcplx.FromFloat64(1, 0, 64),
	)
	b := mat2.New(
		bigcplx.FromFloat64(1, 0, 64), bigcplx.FromFloat64(0, 0, 64),
		bigcplx.FromFloat64(1, 0, 64), bigcplx.FromFloat64(1, 0, 64),
	)

	fmt.Println(a.Mul(b).Format(3))
	fmt.Println("trace =", a.Mul(b).Trace().Format(3))
	// Output:
	// (2.00 0) (1.00 0)
	// (1.00 0) (1.00 0)
	// trace = (3.00 0)
}

// ExampleMatrix_Inv inverts a shear and recovers the identity.
func ExampleMatrix_Inv() {
	a := mat2.New(
		bigcplx.FromFloat64(1, 0, 64), bigcplx.FromFloat64(1, 0, 64),
		bigcplx.FromFloat64(0, 0, 64), bigcplx.FromFloat64(1, 0, 64),
	)

	inv, err := a.Inv()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(a.Mul(inv).Equal(mat2.Identity(64)))
	// Output:
	// true
}
