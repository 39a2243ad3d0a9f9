// Package trsmath is a small affine-transform math core: points,
// directions and 4×4 homogeneous matrices that work the same way whether
// the scalar is float64, float32 or an integer carried in Q16.16 fixed point.
//
// 🚀 What is inside?
//
//	• fixed/   the Q16.16 scalar codec and scalar-kind detection
//	• approx/  tolerance-based comparison with per-kind default epsilons
//	• affine/  Vector4 and Matrix4x4, determinant/inverse/transpose,
//	           Translate-Rotate-Scale composition and decomposition
//
// ✨ Why trsmath?
//
//   - One generic API for every scalar kind, no per-type copies
//   - Integer transforms widen products to int64; Inverse reports overflow
//   - Output-argument forms are alias-safe (dst may equal an input)
//   - Pure values: no allocations and safe to copy
//
// Quick example:
//
//	m := affine.Identity[float64]()
//	m.Translate(5, 10, 15).Rotate(math.Pi/6, math.Pi/4, math.Pi/3).Scale(2, 3, 4)
//	t, r, s := m.Decompose() // (5,10,15) (π/6,π/4,π/3) (2,3,4)
//
//	go get github.com/katalvlaran/trsmath/affine
package trsmath
