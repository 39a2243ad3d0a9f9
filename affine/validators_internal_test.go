// SPDX-License-Identifier: MIT

package affine

import (
	"errors"
	"testing"

	"github.com/katalvlaran/trsmath/fixed"
	"github.com/stretchr/testify/require"
)

func TestGuards_PanicMessages(t *testing.T) {
	require.PanicsWithValue(t, panicIndexOutOfRange, func() { mustIndex(4, 4) })
	require.PanicsWithValue(t, panicIndexOutOfRange, func() { mustRowCol(0, -1, 3) })
	require.PanicsWithValue(t, panicDivideByZero, func() { mustNonZero(0.0) })
	require.NotPanics(t, func() { mustRowCol(3, 3, 4) })
}

func TestScaleRaw_WidensIntegral(t *testing.T) {
	raw := fixed.Encode(int32(300))
	require.Equal(t, fixed.Encode(int32(600)), scaleRaw(raw, 2))
	require.Equal(t, 7.5, scaleRaw(2.5, 3.0))
}

func TestTolerances_PerKind(t *testing.T) {
	d, g := tolerances[int]()
	require.Equal(t, 1/fixed.Scale, d)
	require.Equal(t, 2/fixed.Scale, g)

	d, g = tolerances[float32]()
	require.Equal(t, 1e-6, d)
	require.Equal(t, 1e-6, g)

	d, g = tolerances[float64]()
	require.Equal(t, 1e-12, d)
	require.Equal(t, 1e-9, g)
}

func TestAffineErrorf_KeepsSentinel(t *testing.T) {
	err := affineErrorf(opInverse, ErrSingular)
	require.True(t, errors.Is(err, ErrSingular))
	require.Equal(t, "Inverse: affine: singular matrix", err.Error())
}
