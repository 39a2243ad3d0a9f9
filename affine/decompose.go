// SPDX-License-Identifier: MIT
// Package affine: TRS decomposition.
//
// Conventions kept for compatibility:
//   - Reflection: when the 3×3 block has a negative determinant the sign is
//     reported on the Z scale, whichever axis was mirrored.
//   - Gimbal lock: when the normalized -R[2][0] saturates at ±1 the Y angle
//     is ±π/2, the Z angle is 0 and X carries the remaining freedom.
//   - Degenerate scale: if any axis has (near) zero length GetRotation
//     reports zero instead of dividing by it. Internally the collapsed axis
//     is rebuilt from the surviving ones, so the mutators keep the stored
//     rotation intact.

package affine

import (
	"math"

	"github.com/katalvlaran/trsmath/fixed"
)

// trs is a matrix split into translation, rotation and scale, all in
// float64 logical units. r is row-major.
type trs struct {
	t [3]float64
	r [3][3]float64
	s [3]float64
	// degenerate is set when a scale axis collapsed and r was completed
	// from the remaining axes.
	degenerate bool
}

func (d trs) withUnitScale() trs {
	d.s = [3]float64{1, 1, 1}

	return d
}

// decomposeTRS splits the affine part of a.
func decomposeTRS[T fixed.Scalar](a *Matrix4x4[T]) trs {
	var d trs
	var l [3][3]float64
	var r, c int
	for r = 0; r < 3; r++ {
		d.t[r] = fixed.DecodeFloat(a.m[3][r])
		for c = 0; c < 3; c++ {
			l[r][c] = fixed.DecodeFloat(a.m[c][r])
		}
	}
	for c = 0; c < 3; c++ {
		d.s[c] = math.Sqrt(l[0][c]*l[0][c] + l[1][c]*l[1][c] + l[2][c]*l[2][c])
	}
	if det3(&l) < 0 {
		d.s[2] = -d.s[2]
	}

	degenerate, _ := tolerances[T]()
	var live [3]bool
	for c = 0; c < 3; c++ {
		if math.Abs(d.s[c]) < degenerate {
			d.degenerate = true
			continue
		}
		live[c] = true
		for r = 0; r < 3; r++ {
			d.r[r][c] = l[r][c] / d.s[c]
		}
	}
	if d.degenerate {
		completeBasis(&d.r, live)
	}

	return d
}

// completeBasis fills the columns of r not marked live so that r stays a
// right-handed basis containing the live columns. A collapsed axis has zero
// scale, so whatever fills it leaves R·S unchanged.
func completeBasis(r *[3][3]float64, live [3]bool) {
	var n, k, c int
	for c = 0; c < 3; c++ {
		if live[c] {
			n++
			k = c
		}
	}
	switch n {
	case 0:
		*r = identity3()
	case 1:
		// pick the world axis least aligned with the surviving column
		u := column3(r, k)
		axis := 0
		for c = 1; c < 3; c++ {
			if math.Abs(u[c]) < math.Abs(u[axis]) {
				axis = c
			}
		}
		var e [3]float64
		e[axis] = 1
		v := normalize3(cross3(u, e))
		setColumn3(r, (k+1)%3, v)
		setColumn3(r, (k+2)%3, cross3(u, v))
	case 2:
		for c = 0; c < 3; c++ {
			if !live[c] {
				setColumn3(r, c, normalize3(cross3(column3(r, (c+1)%3), column3(r, (c+2)%3))))
			}
		}
	}
}

func column3(r *[3][3]float64, c int) [3]float64 {
	return [3]float64{r[0][c], r[1][c], r[2][c]}
}

func setColumn3(r *[3][3]float64, c int, v [3]float64) {
	r[0][c], r[1][c], r[2][c] = v[0], v[1], v[2]
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(v [3]float64) [3]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}

	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}

// applyTRS writes t and R·S into a, leaving row 3 untouched.
func applyTRS[T fixed.Scalar](a *Matrix4x4[T], d trs) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a.m[c][r] = fixed.EncodeFloat[T](d.r[r][c] * d.s[c])
		}
		a.m[3][r] = fixed.EncodeFloat[T](d.t[r])
	}
}

// composeTRS returns the affine matrix T·R·S.
func composeTRS[T fixed.Scalar](d trs) Matrix4x4[T] {
	out := Identity[T]()
	applyTRS(&out, d)

	return out
}

func identity3() [3][3]float64 {
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func det3(l *[3][3]float64) float64 {
	return l[0][0]*(l[1][1]*l[2][2]-l[1][2]*l[2][1]) -
		l[0][1]*(l[1][0]*l[2][2]-l[1][2]*l[2][0]) +
		l[0][2]*(l[1][0]*l[2][1]-l[1][1]*l[2][0])
}

// eulerXYZ extracts (x, y, z) angles from a rotation built as Rz·Ry·Rx.
// gimbal is the distance from ±1 at which the Y angle is treated as ±π/2.
func eulerXYZ(r *[3][3]float64, gimbal float64) [3]float64 {
	sy := -r[2][0]
	switch {
	case sy >= 1-gimbal:
		// R[0][1] = sin(x-z), R[1][1] = cos(x-z); z is pinned to 0.
		return [3]float64{math.Atan2(r[0][1], r[1][1]), math.Pi / 2, 0}
	case sy <= -1+gimbal:
		// R[0][1] = -sin(x+z), R[1][1] = cos(x+z).
		return [3]float64{math.Atan2(-r[0][1], r[1][1]), -math.Pi / 2, 0}
	default:
		return [3]float64{
			math.Atan2(r[2][1], r[2][2]),
			math.Asin(sy),
			math.Atan2(r[1][0], r[0][0]),
		}
	}
}

// ---------- Getters ----------

// GetTranslation returns column 3, rows 0..2.
func (a Matrix4x4[T]) GetTranslation() Vector3[T] {
	var out Vector3[T]
	a.GetTranslationTo(&out)

	return out
}

// GetTranslationTo stores the translation into dst.
func (a *Matrix4x4[T]) GetTranslationTo(dst *Vector3[T]) {
	dst.X = fixed.Decode(a.m[3][0])
	dst.Y = fixed.Decode(a.m[3][1])
	dst.Z = fixed.Decode(a.m[3][2])
}

// GetScale returns the length of each upper-left column. A reflection is
// reported as a negative Z scale.
func (a Matrix4x4[T]) GetScale() Vector3[T] {
	var out Vector3[T]
	a.GetScaleTo(&out)

	return out
}

// GetScaleTo stores the scale into dst.
func (a *Matrix4x4[T]) GetScaleTo(dst *Vector3[T]) {
	d := decomposeTRS(a)
	*dst = vector3FromFloat[T](d.s)
}

// GetRotation returns the X-Y-Z Euler angles in radians of the rotation
// left after dividing out the scale. See the package conventions for
// gimbal lock and degenerate scale.
func (a Matrix4x4[T]) GetRotation() Vector3[T] {
	var out Vector3[T]
	a.GetRotationTo(&out)

	return out
}

// GetRotationTo stores the Euler angles into dst.
func (a *Matrix4x4[T]) GetRotationTo(dst *Vector3[T]) {
	d := decomposeTRS(a)
	*dst = vector3FromFloat[T](rotationOf[T](&d))
}

// Decompose returns translation, Euler rotation and scale in one pass.
func (a Matrix4x4[T]) Decompose() (translation, rotation, scale Vector3[T]) {
	d := decomposeTRS(&a)
	a.GetTranslationTo(&translation)

	return translation, vector3FromFloat[T](rotationOf[T](&d)), vector3FromFloat[T](d.s)
}

// rotationOf returns the Euler angles of d, zero when d is degenerate.
func rotationOf[T fixed.Scalar](d *trs) [3]float64 {
	if d.degenerate {
		return [3]float64{}
	}
	_, gimbal := tolerances[T]()

	return eulerXYZ(&d.r, gimbal)
}

func vector3FromFloat[T fixed.Scalar](f [3]float64) Vector3[T] {
	return Vector3[T]{fixed.FromFloat[T](f[0]), fixed.FromFloat[T](f[1]), fixed.FromFloat[T](f[2])}
}
