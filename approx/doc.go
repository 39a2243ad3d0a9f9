// SPDX-License-Identifier: MIT

// Package approx holds the near-equality predicates shared by the transform
// types: IsEqual and IsZero over logical scalar values, with a default
// tolerance per scalar kind.
//
// Default tolerance table:
//
//	float64  1e-9   (tight)
//	float32  1e-4   (loose)
//	integral 1      (exactly one logical unit)
//
// Tolerances can be overridden per call with functional options
// (WithEpsilon, WithRelative). Comparisons are inclusive: |a-b| <= eps.
package approx
