// SPDX-License-Identifier: MIT

package fixed

import "math"

// Shift is the number of fractional bits of the Q16.16 representation.
const Shift = 16

// One is the raw Q16.16 representation of the logical value 1.
const One = 1 << Shift

// Scale is One as a float64, used by the real-valued encode/decode paths.
const Scale float64 = One

// Encode converts a logical value into its stored representation.
// For integral T the result is truncate(v * 65536) computed through a float64
// multiply; for real T it returns v unchanged.
func Encode[T Scalar](v T) T {
	if !IsIntegral[T]() {
		return v
	}

	return T(int32(float64(v) * Scale))
}

// Decode converts a stored value back into its logical value.
// For integral T it is an arithmetic right shift by Shift (rounds toward -Inf).
func Decode[T Scalar](raw T) T {
	if !IsIntegral[T]() {
		return raw
	}

	return T(int64(raw) >> Shift)
}

// EncodeFloat stores a real-valued logical value as T.
// Used by builders whose entries come from trigonometry or other real math.
func EncodeFloat[T Scalar](f float64) T {
	if !IsIntegral[T]() {
		return T(f)
	}

	return T(int32(f * Scale))
}

// DecodeFloat returns the logical value of raw as a float64, keeping the
// fractional bits that Decode drops for integral T.
func DecodeFloat[T Scalar](raw T) float64 {
	if !IsIntegral[T]() {
		return float64(raw)
	}

	return float64(raw) / Scale
}

// FromFloat converts a real-valued logical result into a logical T.
// Integral T rounds to the nearest integer; this is not an encoding.
func FromFloat[T Scalar](f float64) T {
	if !IsIntegral[T]() {
		return T(f)
	}

	return T(math.Round(f))
}

// Wrap narrows a widened fixed-point accumulator to the 32-bit stored width.
func Wrap[T Scalar](wide int64) T {
	return T(int32(wide))
}

// Mul multiplies two stored values.
// For integral T the product is formed in 64 bits and shifted back once.
func Mul[T Scalar](a, b T) T {
	if !IsIntegral[T]() {
		return a * b
	}

	return Wrap[T]((int64(a) * int64(b)) >> Shift)
}

// Div divides two stored values.
// For integral T the dividend is pre-shifted in 64 bits so the quotient keeps
// Q16.16 scale. Division by a zero integral value panics like any Go integer
// division.
func Div[T Scalar](a, b T) T {
	if !IsIntegral[T]() {
		return a / b
	}

	return Wrap[T]((int64(a) << Shift) / int64(b))
}
