// SPDX-License-Identifier: MIT
package fixed_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/trsmath/fixed"
	"github.com/stretchr/testify/require"
)

type meters int32

func TestKindOf(t *testing.T) {
	require.Equal(t, fixed.KindFixed, fixed.KindOf[int]())
	require.Equal(t, fixed.KindFixed, fixed.KindOf[int32]())
	require.Equal(t, fixed.KindFixed, fixed.KindOf[int64]())
	require.Equal(t, fixed.KindFixed, fixed.KindOf[meters]())
	require.Equal(t, fixed.KindFloat32, fixed.KindOf[float32]())
	require.Equal(t, fixed.KindFloat64, fixed.KindOf[float64]())

	require.True(t, fixed.IsIntegral[int]())
	require.False(t, fixed.IsIntegral[float64]())
	require.Equal(t, "fixed", fixed.KindFixed.String())
	require.Equal(t, "unknown", fixed.Kind(42).String())
}

func TestEncodeDecode_Integral(t *testing.T) {
	for _, v := range []int{0, 1, -1, 10, -10, 255, 32767, -32768} {
		raw := fixed.Encode(v)
		require.Equal(t, v<<fixed.Shift, raw, "encode(%d)", v)
		require.Equal(t, v, fixed.Decode(raw), "decode(encode(%d))", v)
	}
}

func TestEncodeDecode_RealIsIdentity(t *testing.T) {
	require.Equal(t, 1.25, fixed.Encode(1.25))
	require.Equal(t, 1.25, fixed.Decode(1.25))
	require.Equal(t, float32(-3.5), fixed.Encode(float32(-3.5)))
	require.Equal(t, 0.1, fixed.EncodeFloat[float64](0.1))
	require.Equal(t, 0.1, fixed.DecodeFloat(0.1))
}

func TestDecode_ArithmeticShiftFloors(t *testing.T) {
	// -0.5 in Q16.16; an arithmetic shift rounds toward -Inf.
	require.Equal(t, -1, fixed.Decode(-fixed.One/2))
	require.Equal(t, 0, fixed.Decode(fixed.One/2))
	require.Equal(t, 0, fixed.Decode(fixed.One-1))
}

func TestEncodeFloat_KeepsFraction(t *testing.T) {
	raw := fixed.EncodeFloat[int](0.5)
	require.Equal(t, fixed.One/2, raw)
	require.InDelta(t, 0.5, fixed.DecodeFloat(raw), 1e-9)

	// truncation, not rounding
	require.Equal(t, int32(65535), fixed.EncodeFloat[int32](0.99999999))
	require.InDelta(t, math.Pi, fixed.DecodeFloat(fixed.EncodeFloat[int64](math.Pi)), 1.0/fixed.Scale)
}

func TestFromFloat(t *testing.T) {
	require.Equal(t, 2, fixed.FromFloat[int](1.9999))
	require.Equal(t, -3, fixed.FromFloat[int](-2.6))
	require.Equal(t, 1.9999, fixed.FromFloat[float64](1.9999))
}

func TestMulDiv(t *testing.T) {
	a := fixed.Encode(3)
	b := fixed.EncodeFloat[int](0.5)
	require.Equal(t, fixed.EncodeFloat[int](1.5), fixed.Mul(a, b))
	require.Equal(t, fixed.Encode(6), fixed.Div(a, b))

	require.Equal(t, 1.5, fixed.Mul(3.0, 0.5))
	require.Equal(t, 6.0, fixed.Div(3.0, 0.5))
}

func TestMul_WidensIntermediate(t *testing.T) {
	// The raw product 2^32*20000 only fits in the 64-bit accumulator.
	a := fixed.Encode(int32(100))
	b := fixed.Encode(int32(200))
	require.Equal(t, int32(20000), fixed.Decode(fixed.Mul(a, b)))
}

func TestWrap_SilentOverflow(t *testing.T) {
	require.Equal(t, int64(math.MinInt32), fixed.Wrap[int64](int64(math.MaxInt32)+1))
	require.Equal(t, 7, fixed.Wrap[int](7))
}
