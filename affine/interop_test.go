// SPDX-License-Identifier: MIT
// Package affine_test contains unit tests for the x/image/math conversions.

package affine_test

import (
	"testing"

	"github.com/katalvlaran/trsmath/affine"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

func TestF64_IsRowMajor(t *testing.T) {
	m := affine.CreateTranslation(1, 2, 3).F64()
	require.Equal(t, 1.0, m[3])
	require.Equal(t, 2.0, m[7])
	require.Equal(t, 3.0, m[11])
	require.Equal(t, 1.0, m[15])
	require.Equal(t, 0.0, m[12])
}

func TestMatrix4x4_F64RoundTrip(t *testing.T) {
	m := nonDiagonal[int]()
	require.True(t, affine.Matrix4x4FromF64[int](m.F64()).Equal(m))

	tr := canonicalTRS()
	require.True(t, affine.Matrix4x4FromF64[float64](tr.F64()).Equal(tr))
}

func TestMatrix4x4_F32RoundTrip(t *testing.T) {
	m := nonDiagonal[float64]()
	require.True(t, affine.Matrix4x4FromF32[float64](m.F32()).Equal(m))

	in := f32.Mat4{
		1, 0, 0, 0.5,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	require.Equal(t, 0.5, affine.Matrix4x4FromF32[int](in).F64()[3])
}

func TestVector4_F64RoundTrip(t *testing.T) {
	v := affine.Point(1, -2, 3)
	require.Equal(t, f64.Vec4{1, -2, 3, 1}, v.F64())
	require.True(t, affine.Vector4FromF64[int](v.F64()).Equal(v))
}

func TestVector3_F64(t *testing.T) {
	require.Equal(t, f64.Vec3{1, 2, 3}, affine.NewVector3(1, 2, 3).F64())
	require.Equal(t, affine.NewVector3(1, 3, -1), affine.Vector3FromF64[int](f64.Vec3{1.4, 2.6, -0.6}))
}

func TestMatrix3x3_F64RoundTrip(t *testing.T) {
	m := affine.NewMatrix3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	out := m.F64()
	require.Equal(t, 2.0, out[1])
	require.Equal(t, 4.0, out[5])
	require.True(t, affine.Matrix3x3FromF64[int](out).IsEqual(m))
}
