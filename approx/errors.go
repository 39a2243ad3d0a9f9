// SPDX-License-Identifier: MIT

package approx

// Panic messages for programmer errors in option constructors.
const (
	panicEpsilonInvalid = "approx: WithEpsilon: eps must be finite, non-negative"
)
