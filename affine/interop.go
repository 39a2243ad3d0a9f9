// SPDX-License-Identifier: MIT
// Package affine: conversions to and from golang.org/x/image/math.
//
// The x/image matrices are row-major (m[4*r+c]); values cross the boundary
// as logical reals, so integral storage is decoded on the way out and
// encoded on the way in.

package affine

import (
	"github.com/katalvlaran/trsmath/fixed"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// F64 returns a as a row-major f64.Mat4.
func (a Matrix4x4[T]) F64() f64.Mat4 {
	var out f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = fixed.DecodeFloat(a.m[c][r])
		}
	}

	return out
}

// F32 returns a as a row-major f32.Mat4.
func (a Matrix4x4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = float32(fixed.DecodeFloat(a.m[c][r]))
		}
	}

	return out
}

// Matrix4x4FromF64 converts a row-major f64.Mat4.
func Matrix4x4FromF64[T fixed.Scalar](in f64.Mat4) Matrix4x4[T] {
	var out Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[c][r] = fixed.EncodeFloat[T](in[4*r+c])
		}
	}

	return out
}

// Matrix4x4FromF32 converts a row-major f32.Mat4.
func Matrix4x4FromF32[T fixed.Scalar](in f32.Mat4) Matrix4x4[T] {
	var out Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.m[c][r] = fixed.EncodeFloat[T](float64(in[4*r+c]))
		}
	}

	return out
}

// F64 returns a as an f64.Vec4.
func (a Vector4[T]) F64() f64.Vec4 {
	return f64.Vec4{
		fixed.DecodeFloat(a.v[0]), fixed.DecodeFloat(a.v[1]),
		fixed.DecodeFloat(a.v[2]), fixed.DecodeFloat(a.v[3]),
	}
}

// Vector4FromF64 converts an f64.Vec4.
func Vector4FromF64[T fixed.Scalar](in f64.Vec4) Vector4[T] {
	return Vector4[T]{v: [4]T{
		fixed.EncodeFloat[T](in[0]), fixed.EncodeFloat[T](in[1]),
		fixed.EncodeFloat[T](in[2]), fixed.EncodeFloat[T](in[3]),
	}}
}

// F64 returns v as an f64.Vec3.
func (v Vector3[T]) F64() f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vector3FromF64 converts an f64.Vec3, rounding for integral T.
func Vector3FromF64[T fixed.Scalar](in f64.Vec3) Vector3[T] {
	return vector3FromFloat[T](in)
}

// F64 returns a as a row-major f64.Mat3.
func (a Matrix3x3[T]) F64() f64.Mat3 {
	var out f64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float64(a.m[c][r])
		}
	}

	return out
}

// Matrix3x3FromF64 converts a row-major f64.Mat3, rounding for integral T.
func Matrix3x3FromF64[T fixed.Scalar](in f64.Mat3) Matrix3x3[T] {
	var out Matrix3x3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.m[c][r] = fixed.FromFloat[T](in[3*r+c])
		}
	}

	return out
}
