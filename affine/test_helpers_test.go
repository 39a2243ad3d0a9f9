// SPDX-License-Identifier: MIT
// Package affine_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the storage, algebra and TRS tests.
//   - Comparisons go through F64() so one helper serves every scalar kind.

package affine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/trsmath/affine"
	"github.com/katalvlaran/trsmath/fixed"
	"github.com/stretchr/testify/require"
)

// Angles used by the canonical TRS fixture.
const (
	angleX = math.Pi / 6
	angleY = math.Pi / 4
	angleZ = math.Pi / 3
)

// decompositionDelta is the absolute tolerance for recovered TRS components.
const decompositionDelta = 1e-3

// requireMatrixInDelta fails unless every logical element of got is within
// delta of want.
func requireMatrixInDelta[T fixed.Scalar](t *testing.T, want, got affine.Matrix4x4[T], delta float64) {
	t.Helper()
	w, g := want.F64(), got.F64()
	for i := range w {
		require.InDelta(t, w[i], g[i], delta, "element %d (row %d, col %d)\nwant:\n%v\ngot:\n%v", i, i/4, i%4, want, got)
	}
}

// requireVec3InDelta fails unless got is within delta of (x, y, z).
func requireVec3InDelta[T fixed.Scalar](t *testing.T, x, y, z float64, got affine.Vector3[T], delta float64) {
	t.Helper()
	require.InDelta(t, x, float64(got.X), delta, "X of %v", got)
	require.InDelta(t, y, float64(got.Y), delta, "Y of %v", got)
	require.InDelta(t, z, float64(got.Z), delta, "Z of %v", got)
}

// MustInverse returns m⁻¹ or fails the test.
func MustInverse[T fixed.Scalar](t *testing.T, m affine.Matrix4x4[T]) affine.Matrix4x4[T] {
	t.Helper()
	inv, err := m.Inverted()
	require.NoError(t, err, "Inverted(\n%v)", m)

	return inv
}

// canonicalTRS builds translate(5,10,15)·rotate(π/6,π/4,π/3)·scale(2,3,4)
// through the local mutators.
func canonicalTRS() affine.Matrix4x4[float64] {
	m := affine.Identity[float64]()
	m.Translate(5, 10, 15).Rotate(angleX, angleY, angleZ).Scale(2, 3, 4)

	return m
}

// nonDiagonal is a dense invertible matrix with determinant 72.
func nonDiagonal[T fixed.Scalar]() affine.Matrix4x4[T] {
	return affine.NewMatrix4x4[T](
		1, 2, 3, 4,
		5, 6, 7, 8,
		2, 6, 4, 8,
		3, 1, 1, 2,
	)
}

// dependentRows has row 1 = 2·row 0 and is therefore singular.
func dependentRows[T fixed.Scalar]() affine.Matrix4x4[T] {
	return affine.NewMatrix4x4[T](
		1, 2, 3, 4,
		2, 4, 6, 8,
		1, 0, 1, 0,
		0, 1, 0, 1,
	)
}
