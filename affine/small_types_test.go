// SPDX-License-Identifier: MIT
// Package affine_test contains unit tests for Vector3 and Matrix3x3.

package affine_test

import (
	"testing"

	"github.com/katalvlaran/trsmath/affine"
	"github.com/stretchr/testify/require"
)

func TestVector3_Arithmetic(t *testing.T) {
	a := affine.NewVector3(1, 2, 3)
	b := affine.NewVector3(4, 5, 6)

	require.Equal(t, affine.NewVector3(5, 7, 9), a.Add(b))
	require.Equal(t, affine.NewVector3(3, 3, 3), b.Sub(a))
	require.Equal(t, affine.NewVector3(2, 4, 6), a.Mul(2))
	require.Equal(t, affine.NewVector3(2, 2, 3), b.Div(2))
	require.Equal(t, 32, a.Dot(b))
	require.Equal(t, affine.NewVector3(-3, 6, -3), a.Cross(b))
	require.Equal(t, "(1, 2, 3)", a.String())
}

func TestVector3_CrossOfBasis(t *testing.T) {
	x := affine.NewVector3(1.0, 0.0, 0.0)
	y := affine.NewVector3(0.0, 1.0, 0.0)
	require.Equal(t, affine.NewVector3(0.0, 0.0, 1.0), x.Cross(y))
	require.Equal(t, affine.NewVector3(0.0, 0.0, -1.0), y.Cross(x))
}

func TestVector3_LengthAndNormalize(t *testing.T) {
	v := affine.NewVector3(3.0, 0.0, 4.0)
	require.Equal(t, 5.0, v.Length())

	n, err := v.Normalized()
	require.NoError(t, err)
	require.True(t, n.IsEqual(affine.NewVector3(0.6, 0.0, 0.8)))

	_, err = affine.NewVector3(0.0, 0.0, 0.0).Normalized()
	require.ErrorIs(t, err, affine.ErrZeroLength)
}

func TestVector3_DivByZeroPanics(t *testing.T) {
	require.Panics(t, func() { _ = affine.NewVector3(1, 2, 3).Div(0) })
}

func TestMatrix3x3_Determinant(t *testing.T) {
	m := affine.NewMatrix3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	require.Equal(t, 1, m.Determinant())
	require.Equal(t, 1, affine.Identity3[int]().Determinant())

	f := affine.NewMatrix3x3(
		2.0, 0.0, 0.0,
		0.0, 3.0, 0.0,
		0.0, 0.0, 4.0,
	)
	require.Equal(t, 24.0, f.Determinant())
}

func TestMatrix3x3_RowMajorConstructor(t *testing.T) {
	m := affine.NewMatrix3x3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	require.Equal(t, 2, m.At(0, 1))
	require.Equal(t, 4, m.At(1, 0))
	require.Equal(t, affine.NewVector3(3, 6, 9), m.Column(2))
	require.Equal(t, 4, m.Transposed().At(0, 1))
	require.Equal(t, "[1 2 3]\n[4 5 6]\n[7 8 9]", m.String())

	m.Set(2, 2, 0)
	require.Equal(t, 0, m.At(2, 2))
	require.Panics(t, func() { m.At(3, 0) })
}

func TestMatrix3x3_MulAndMulVec(t *testing.T) {
	a := affine.NewMatrix3x3(
		1, 2, 0,
		0, 1, 0,
		0, 0, 2,
	)
	b := affine.NewMatrix3x3(
		1, 0, 0,
		3, 1, 0,
		0, 0, 1,
	)
	want := affine.NewMatrix3x3(
		7, 2, 0,
		3, 1, 0,
		0, 0, 2,
	)
	require.True(t, a.Mul(b).IsEqual(want))
	require.True(t, a.Mul(affine.Identity3[int]()).IsEqual(a))
	require.Equal(t, affine.NewVector3(5, 2, 6), a.MulVec(affine.NewVector3(1, 2, 3)))
}

func TestVector3_NormalizeIntegralUnit(t *testing.T) {
	n, err := affine.NewVector3(0, 0, 1).Normalized()
	require.NoError(t, err)
	require.Equal(t, affine.NewVector3(0, 0, 1), n)
}
