// SPDX-License-Identifier: MIT
package affine_test

import (
	"fmt"

	"github.com/katalvlaran/trsmath/affine"
)

// ExampleMatrix4x4_Translate builds a transform with the local mutators and
// reads its components back.
func ExampleMatrix4x4_Translate() {
	m := affine.Identity[float64]()
	m.Scale(2, 3, 4).Translate(5, 10, 15)
	fmt.Println(m.GetTranslation(), m.GetScale())
	// Output: (5, 10, 15) (2, 3, 4)
}

// ExampleMatrix4x4_MulVec shows that points pick up translation and
// directions do not.
func ExampleMatrix4x4_MulVec() {
	m := affine.CreateTranslation(1.0, 2.0, 3.0)
	fmt.Println(m.MulVec(affine.Point(1.0, 1.0, 1.0)))
	fmt.Println(m.MulVec(affine.Direction(1.0, 1.0, 1.0)))
	// Output:
	// (2, 3, 4, 1)
	// (1, 1, 1, 0)
}

// ExampleMatrix4x4_Inverted inverts an integral scale. Fractional results
// are kept in the fixed-point storage even though the logical view of an
// int truncates them.
func ExampleMatrix4x4_Inverted() {
	m := affine.CreateScale(2, 4, 8)
	inv, err := m.Inverted()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv)
	// Output:
	// [0.5 0 0 0]
	// [0 0.25 0 0]
	// [0 0 0.125 0]
	// [0 0 0 1]
}
