// SPDX-License-Identifier: MIT

// Package affine implements 4-component vectors and 4×4 matrices for points,
// directions and homogeneous transforms, generic over real and integral
// scalar types.
//
// The package provides:
//
//   - Vector4 and Matrix4x4 storage with converting accessors (At/Set,
//     X()/Y()/Z()/W()) and raw accessors (Raw/SetRaw).
//   - A linear-algebra engine: Determinant, Inverse, Transpose and
//     Multiply, each with an alias-safe output-argument form.
//   - A Translate-Rotate-Scale engine: CreateScale/CreateRotation/
//     CreateTranslation builders, local mutators (Scale/Rotate/Translate),
//     absolute setters and decomposers (GetScale/GetRotation/GetTranslation).
//   - Vector3 and Matrix3x3 as plain value collaborators.
//
// Storage model:
//
//	For integral T every element is stored in Q16.16 (see package fixed):
//	m.Set(0, 0, 5) stores 5<<16 and m.At(0, 0) returns 5. Raw/SetRaw bypass
//	the codec. For real T stored value == logical value.
//
// Matrices are stored column-major (m[col][row]) and addressed by (row, col)
// or by a flattened column-major index 0..15. Constructors taking sixteen
// values read them row-major.
//
// Error policy:
//
//   - Recoverable failures (singular matrix, zero-length normalize) return
//     package sentinels wrapped with an operation tag; match with errors.Is.
//     The destination is never modified on failure.
//   - Programmer errors (index out of range, division by a zero scalar) panic
//     in every build. There is no unchecked release mode.
//
// All types are plain values; no operation allocates, blocks or touches
// shared mutable state.
package affine
