// SPDX-License-Identifier: MIT
package fixed_test

import (
	"fmt"

	"github.com/katalvlaran/trsmath/fixed"
)

// ExampleEncode shows the Q16.16 round trip for an integral scalar.
func ExampleEncode() {
	raw := fixed.Encode(10)
	fmt.Println(raw, fixed.Decode(raw))
	fmt.Println(fixed.DecodeFloat(fixed.EncodeFloat[int](2.5)))
	// Output:
	// 655360 10
	// 2.5
}
