// SPDX-License-Identifier: MIT
// Package affine: linear-algebra engine for Matrix4x4.
//
// Purpose:
//   - Determinant by Laplace expansion along the first row over 3×3 minors.
//   - Inverse as adjugate / determinant (16 signed cofactors).
//   - Transpose and products with alias-safe output-argument forms.
//
// Fixed-point policy:
//   - Every product of two stored Q16.16 values is accumulated in int64 and
//     shifted back once; nothing is summed at the 32-bit stored width.
//
// Aliasing policy:
//   - Any function taking a destination and sources by pointer behaves as if
//     all sources were read before the destination is written. When the
//     destination is one of the sources the result is built in a private
//     temporary and assigned only after the computation succeeds.

package affine

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/trsmath/approx"
	"github.com/katalvlaran/trsmath/fixed"
)

// ---------- Products ----------

// mulInto writes a × b into dst. dst must not alias a or b.
func mulInto[T fixed.Scalar](dst, a, b *Matrix4x4[T]) {
	var c, r, k int
	if fixed.IsIntegral[T]() {
		var acc int64
		for c = 0; c < 4; c++ {
			for r = 0; r < 4; r++ {
				acc = 0
				for k = 0; k < 4; k++ {
					acc += int64(a.m[k][r]) * int64(b.m[c][k])
				}
				dst.m[c][r] = fixed.Wrap[T](acc >> fixed.Shift)
			}
		}

		return
	}

	var sum T
	for c = 0; c < 4; c++ {
		for r = 0; r < 4; r++ {
			sum = 0
			for k = 0; k < 4; k++ {
				sum += a.m[k][r] * b.m[c][k]
			}
			dst.m[c][r] = sum
		}
	}
}

// mulVecInto writes m × v into dst. dst must not alias v.
func mulVecInto[T fixed.Scalar](dst *Vector4[T], m *Matrix4x4[T], v *Vector4[T]) {
	var r, k int
	if fixed.IsIntegral[T]() {
		var acc int64
		for r = 0; r < 4; r++ {
			acc = 0
			for k = 0; k < 4; k++ {
				acc += int64(m.m[k][r]) * int64(v.v[k])
			}
			dst.v[r] = fixed.Wrap[T](acc >> fixed.Shift)
		}

		return
	}

	var sum T
	for r = 0; r < 4; r++ {
		sum = 0
		for k = 0; k < 4; k++ {
			sum += m.m[k][r] * v.v[k]
		}
		dst.v[r] = sum
	}
}

// Multiply stores a × b into dst. dst may be a, b, or both.
func Multiply[T fixed.Scalar](dst, a, b *Matrix4x4[T]) {
	if dst == a || dst == b {
		var tmp Matrix4x4[T]
		mulInto(&tmp, a, b)
		*dst = tmp

		return
	}
	mulInto(dst, a, b)
}

// MultiplyVec stores m × v into dst. dst may be v.
func MultiplyVec[T fixed.Scalar](dst *Vector4[T], m *Matrix4x4[T], v *Vector4[T]) {
	if dst == v {
		var tmp Vector4[T]
		mulVecInto(&tmp, m, v)
		*dst = tmp

		return
	}
	mulVecInto(dst, m, v)
}

// ---------- Minors and cofactors ----------

// minorRaw returns the stored elements of a with row skipRow and column
// skipCol removed, in row-major order.
func (a *Matrix4x4[T]) minorRaw(skipRow, skipCol int) (out [3][3]T) {
	var r, c, i, j int
	for r = 0; r < 4; r++ {
		if r == skipRow {
			continue
		}
		j = 0
		for c = 0; c < 4; c++ {
			if c == skipCol {
				continue
			}
			out[i][j] = a.m[c][r]
			j++
		}
		i++
	}

	return out
}

// det3Wide is the determinant of a row-major 3×3 of Q16.16 values, widened
// to int64 and returned at 2^32 scale. Each 2×2 sub-determinant is formed
// at 2^32 and shifted once before the outer multiply. ok is false when an
// intermediate left the int64 range.
func det3Wide[T fixed.Scalar](n *[3][3]T) (det int64, ok bool) {
	a, b, c := int64(n[0][0]), int64(n[0][1]), int64(n[0][2])
	d, e, f := int64(n[1][0]), int64(n[1][1]), int64(n[1][2])
	g, h, i := int64(n[2][0]), int64(n[2][1]), int64(n[2][2])

	var w wideMath
	t0 := w.mul(a, w.sub(w.mul(e, i), w.mul(f, h))>>fixed.Shift)
	t1 := w.mul(b, w.sub(w.mul(d, i), w.mul(f, g))>>fixed.Shift)
	t2 := w.mul(c, w.sub(w.mul(d, h), w.mul(e, g))>>fixed.Shift)
	det = w.add(w.sub(t0, t1), t2)

	return det, !w.overflowed
}

// cofactorSign is (-1)^(row+col).
func cofactorSign(row, col int) int64 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}

// cofactorWide returns the signed cofactor (row, col) of an integral matrix
// at Q16.16 scale, kept in int64.
func (a *Matrix4x4[T]) cofactorWide(row, col int) (int64, bool) {
	n := a.minorRaw(row, col)
	d, ok := det3Wide(&n)

	return cofactorSign(row, col) * (d >> fixed.Shift), ok
}

// cofactorReal returns the signed cofactor (row, col) of a real matrix,
// reusing the Matrix3x3 determinant.
func (a *Matrix4x4[T]) cofactorReal(row, col int) T {
	n := a.minorRaw(row, col)
	d := NewMatrix3x3(
		n[0][0], n[0][1], n[0][2],
		n[1][0], n[1][1], n[1][2],
		n[2][0], n[2][1], n[2][2],
	).Determinant()
	if cofactorSign(row, col) < 0 {
		return -d
	}

	return d
}

// ---------- Determinant ----------

// determinantWide expands along the first row of an integral matrix and
// returns the determinant at 2^32 scale (one extra scale level), so the
// inverse can reuse it without an extra rounding step.
func (a *Matrix4x4[T]) determinantWide() (int64, bool) {
	var w wideMath
	var acc int64
	for c := 0; c < 4; c++ {
		cof, ok := a.cofactorWide(0, c)
		w.check(ok)
		acc = w.add(acc, w.mul(int64(a.m[c][0]), cof))
	}

	return acc, !w.overflowed
}

// DeterminantRaw returns the determinant in stored scale: Q16.16 for
// integral T (Identity gives fixed.One), the plain value for real T.
//
// Implementation:
//   - Real T: Laplace expansion along row 0 over four Matrix3x3 minors.
//   - Integral T: the same expansion with int64 accumulation; each minor is
//     shifted once, and the 2^32-scale sum is shifted once more at the end.
//     Outside the range documented on Inverse the int64 sum wraps and the
//     result is meaningless; Inverse reports that case as ErrOverflow.
//
// Complexity: O(1), four 3×3 determinants.
func (a Matrix4x4[T]) DeterminantRaw() T {
	if fixed.IsIntegral[T]() {
		det, _ := a.determinantWide()

		return fixed.Wrap[T](det >> fixed.Shift)
	}

	var det T
	for c := 0; c < 4; c++ {
		det += a.m[c][0] * a.cofactorReal(0, c)
	}

	return det
}

// Determinant returns the logical determinant.
func (a Matrix4x4[T]) Determinant() T {
	return fixed.Decode(a.DeterminantRaw())
}

// ---------- Inverse ----------

// inverseInto computes the inverse of a into dst. dst is written only on
// success; it must not alias a.
func (a *Matrix4x4[T]) inverseInto(dst *Matrix4x4[T]) error {
	var r, c int
	if fixed.IsIntegral[T]() {
		var w wideMath
		var cof [4][4]int64
		var detWide int64
		var ok bool
		for r = 0; r < 4; r++ {
			for c = 0; c < 4; c++ {
				cof[r][c], ok = a.cofactorWide(r, c)
				w.check(ok)
			}
		}
		for c = 0; c < 4; c++ {
			detWide = w.add(detWide, w.mul(int64(a.m[c][0]), cof[0][c]))
		}
		if w.overflowed {
			return ErrOverflow
		}
		det := detWide >> fixed.Shift // Q16.16
		if det == 0 {
			return ErrSingular
		}
		// adjugate: cofactor (r, c) lands at (c, r), i.e. m[r][c].
		var out Matrix4x4[T]
		for r = 0; r < 4; r++ {
			for c = 0; c < 4; c++ {
				out.m[r][c] = fixed.Wrap[T](w.mul(cof[r][c], fixed.One) / det)
			}
		}
		if w.overflowed {
			return ErrOverflow
		}
		*dst = out

		return nil
	}

	var cof [4][4]T
	var det T
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			cof[r][c] = a.cofactorReal(r, c)
		}
	}
	for c = 0; c < 4; c++ {
		det += a.m[c][0] * cof[0][c]
	}
	if math.Abs(float64(det)) < float64(approx.Epsilon[T]()) {
		return ErrSingular
	}
	inv := 1 / det
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			dst.m[r][c] = cof[r][c] * inv
		}
	}

	return nil
}

// Inverse stores src⁻¹ into dst.
//
// Implementation:
//   - Stage 1: compute all 16 signed cofactors and the determinant.
//   - Stage 2: fail with ErrSingular if |det| is below the tolerance of T
//     (for integral T: a zero Q16.16 determinant), or with ErrOverflow if an
//     integral intermediate left the int64 range.
//   - Stage 3: place cofactor (r, c) at (c, r) and divide by det: a reciprocal
//     multiply for real T, (cofactor << 16) / det for integral T.
//
// Errors:
//   - ErrSingular; dst is left unmodified.
//   - ErrOverflow (integral T only): an int64 intermediate overflowed.
//     Every intermediate fits while the logical entries of a dense matrix
//     stay within about ±96; sparse matrices such as TRS transforms
//     tolerate larger values. dst is left unmodified.
//
// Notes:
//   - dst may be src. The result is always built in a temporary.
func Inverse[T fixed.Scalar](dst, src *Matrix4x4[T]) error {
	var tmp Matrix4x4[T]
	if err := src.inverseInto(&tmp); err != nil {
		return affineErrorf(opInverse, err)
	}
	*dst = tmp

	return nil
}

// Invert replaces a with its inverse. On ErrSingular a is unchanged.
func (a *Matrix4x4[T]) Invert() error { return Inverse(a, a) }

// InverseTo stores the inverse of a into dst. dst may be a.
func (a *Matrix4x4[T]) InverseTo(dst *Matrix4x4[T]) error { return Inverse(dst, a) }

// Inverted returns the inverse of a, or ErrSingular with a zero matrix.
func (a Matrix4x4[T]) Inverted() (Matrix4x4[T], error) {
	var out Matrix4x4[T]
	if err := Inverse(&out, &a); err != nil {
		return Matrix4x4[T]{}, err
	}

	return out, nil
}

// ---------- Transpose ----------

// Transpose stores srcᵀ into dst. When dst == src the off-diagonal pairs are
// swapped in place and the diagonal is left alone.
func Transpose[T fixed.Scalar](dst, src *Matrix4x4[T]) {
	var r, c int
	if dst == src {
		for c = 1; c < 4; c++ {
			for r = 0; r < c; r++ {
				dst.m[c][r], dst.m[r][c] = dst.m[r][c], dst.m[c][r]
			}
		}

		return
	}
	for c = 0; c < 4; c++ {
		for r = 0; r < 4; r++ {
			dst.m[c][r] = src.m[r][c]
		}
	}
}

// Transpose transposes a in place.
func (a *Matrix4x4[T]) Transpose() { Transpose(a, a) }

// TransposeTo stores aᵀ into dst. dst may be a.
func (a *Matrix4x4[T]) TransposeTo(dst *Matrix4x4[T]) { Transpose(dst, a) }

// Transposed returns aᵀ.
func (a Matrix4x4[T]) Transposed() Matrix4x4[T] {
	var out Matrix4x4[T]
	Transpose(&out, &a)

	return out
}

// ---------- Checked int64 arithmetic ----------

// wideMath performs int64 arithmetic and remembers whether any step
// overflowed. The zero value is ready to use.
type wideMath struct {
	overflowed bool
}

func (w *wideMath) check(ok bool) {
	if !ok {
		w.overflowed = true
	}
}

func (w *wideMath) mul(a, b int64) int64 {
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if (a < 0) != (b < 0) {
		w.check(hi == 0 && lo <= 1<<63)

		return -int64(lo)
	}
	w.check(hi == 0 && lo <= math.MaxInt64)

	return int64(lo)
}

func (w *wideMath) add(a, b int64) int64 {
	s := a + b
	w.check((a >= 0) != (b >= 0) || (s >= 0) == (a >= 0))

	return s
}

func (w *wideMath) sub(a, b int64) int64 {
	s := a - b
	w.check((a >= 0) == (b >= 0) || (s >= 0) == (a >= 0))

	return s
}

func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}
