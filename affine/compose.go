// SPDX-License-Identifier: MIT
// Package affine: Translate-Rotate-Scale composition.
//
// An affine matrix is read as three components: translation t (column 3,
// rows 0..2), rotation R and per-axis scale S, with the upper-left 3×3
// block equal to R·S. Rotations use X-Y-Z Euler angles in radians and the
// combined matrix R = Rz·Ry·Rx.
//
// Local mutators and the canonical TRS matrix:
//   - Scale post-multiplies: M := M·S(s).
//   - Rotate post-multiplies the rotation component: R := R·R(r).
//   - Translate moves the translation component: t := t + v.
//
// Starting from Identity, any order of Translate/Rotate/Scale calls with the
// same arguments produces T·R·S. Products of the Create* factories do not
// commute and depend on order.

package affine

import (
	"math"

	"github.com/katalvlaran/trsmath/fixed"
)

// ---------- Builders ----------

// CreateScale returns identity with sx, sy, sz on the diagonal.
func CreateScale[T fixed.Scalar](sx, sy, sz T) Matrix4x4[T] {
	return Diagonal(sx, sy, sz, 1)
}

// CreateScaleV is CreateScale taking a vector.
func CreateScaleV[T fixed.Scalar](s Vector3[T]) Matrix4x4[T] {
	return CreateScale(s.X, s.Y, s.Z)
}

// CreateTranslation returns identity with tx, ty, tz in column 3.
func CreateTranslation[T fixed.Scalar](tx, ty, tz T) Matrix4x4[T] {
	out := Identity[T]()
	out.m[3][0] = fixed.Encode(tx)
	out.m[3][1] = fixed.Encode(ty)
	out.m[3][2] = fixed.Encode(tz)

	return out
}

// CreateTranslationV is CreateTranslation taking a vector.
func CreateTranslationV[T fixed.Scalar](t Vector3[T]) Matrix4x4[T] {
	return CreateTranslation(t.X, t.Y, t.Z)
}

// CreateRotation returns the rotation Rz(rz)·Ry(ry)·Rx(rx); angles in radians.
func CreateRotation[T fixed.Scalar](rx, ry, rz T) Matrix4x4[T] {
	d := trs{r: rotationXYZ(float64(rx), float64(ry), float64(rz))}

	return composeTRS[T](d.withUnitScale())
}

// CreateRotationV is CreateRotation taking a vector of angles.
func CreateRotationV[T fixed.Scalar](r Vector3[T]) Matrix4x4[T] {
	return CreateRotation(r.X, r.Y, r.Z)
}

// rotationXYZ returns Rz·Ry·Rx as a row-major 3×3.
func rotationXYZ(rx, ry, rz float64) [3][3]float64 {
	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	return [3][3]float64{
		{cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx},
		{sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx},
		{-sy, cy * sx, cy * cx},
	}
}

// mul3 returns a·b for row-major 3×3 blocks.
func mul3(a, b *[3][3]float64) (out [3][3]float64) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c]
		}
	}

	return out
}

// ---------- Local mutators (chainable) ----------

// Scale applies a scale in the local frame: a := a·CreateScale(sx, sy, sz).
func (a *Matrix4x4[T]) Scale(sx, sy, sz T) *Matrix4x4[T] {
	s := CreateScale(sx, sy, sz)
	a.MulAssign(&s)

	return a
}

// ScaleV is Scale taking a vector.
func (a *Matrix4x4[T]) ScaleV(s Vector3[T]) *Matrix4x4[T] { return a.Scale(s.X, s.Y, s.Z) }

// Rotate applies a rotation in the local frame of the rotation component:
// R := R·Rz(rz)·Ry(ry)·Rx(rx). Translation and scale are preserved.
func (a *Matrix4x4[T]) Rotate(rx, ry, rz T) *Matrix4x4[T] {
	d := decomposeTRS(a)
	rot := rotationXYZ(float64(rx), float64(ry), float64(rz))
	d.r = mul3(&d.r, &rot)
	applyTRS(a, d)

	return a
}

// RotateV is Rotate taking a vector of angles.
func (a *Matrix4x4[T]) RotateV(r Vector3[T]) *Matrix4x4[T] { return a.Rotate(r.X, r.Y, r.Z) }

// Translate moves the translation component by (tx, ty, tz).
func (a *Matrix4x4[T]) Translate(tx, ty, tz T) *Matrix4x4[T] {
	a.m[3][0] += fixed.Encode(tx)
	a.m[3][1] += fixed.Encode(ty)
	a.m[3][2] += fixed.Encode(tz)

	return a
}

// TranslateV is Translate taking a vector.
func (a *Matrix4x4[T]) TranslateV(t Vector3[T]) *Matrix4x4[T] { return a.Translate(t.X, t.Y, t.Z) }

// ---------- Absolute setters ----------

// SetScale replaces the scale component, keeping rotation and translation.
// The matrix is decomposed and recomposed; raw cells are never patched.
func (a *Matrix4x4[T]) SetScale(sx, sy, sz T) *Matrix4x4[T] {
	d := decomposeTRS(a)
	d.s = [3]float64{float64(sx), float64(sy), float64(sz)}
	applyTRS(a, d)

	return a
}

// SetScaleV is SetScale taking a vector.
func (a *Matrix4x4[T]) SetScaleV(s Vector3[T]) *Matrix4x4[T] { return a.SetScale(s.X, s.Y, s.Z) }

// SetRotation replaces the rotation component, keeping scale and translation.
func (a *Matrix4x4[T]) SetRotation(rx, ry, rz T) *Matrix4x4[T] {
	d := decomposeTRS(a)
	d.r = rotationXYZ(float64(rx), float64(ry), float64(rz))
	applyTRS(a, d)

	return a
}

// SetRotationV is SetRotation taking a vector of angles.
func (a *Matrix4x4[T]) SetRotationV(r Vector3[T]) *Matrix4x4[T] {
	return a.SetRotation(r.X, r.Y, r.Z)
}

// SetTranslation replaces the translation component. Translation is
// independent of the 3×3 block, so column 3 is written directly.
func (a *Matrix4x4[T]) SetTranslation(tx, ty, tz T) *Matrix4x4[T] {
	a.m[3][0] = fixed.Encode(tx)
	a.m[3][1] = fixed.Encode(ty)
	a.m[3][2] = fixed.Encode(tz)

	return a
}

// SetTranslationV is SetTranslation taking a vector.
func (a *Matrix4x4[T]) SetTranslationV(t Vector3[T]) *Matrix4x4[T] {
	return a.SetTranslation(t.X, t.Y, t.Z)
}
