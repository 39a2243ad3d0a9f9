// SPDX-License-Identifier: MIT

package approx

import (
	"math"

	"github.com/katalvlaran/trsmath/fixed"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilonFloat64 is the tolerance used for float64 scalars.
	DefaultEpsilonFloat64 = 1e-9

	// DefaultEpsilonFloat32 is the tolerance used for float32 scalars.
	DefaultEpsilonFloat32 = 1e-4

	// DefaultEpsilonFixed is the tolerance used for integral (Q16.16) scalars,
	// expressed in logical units.
	DefaultEpsilonFixed = 1

	// DefaultRelative selects absolute comparison by default.
	DefaultRelative = false
)

// Option mutates comparison options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved comparison policy. Fields are unexported;
// use the WithX constructors.
type Options struct {
	epsilon    float64
	epsilonSet bool
	relative   bool
}

// WithEpsilon overrides the per-kind default tolerance.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.epsilon = eps
		o.epsilonSet = true
	}
}

// WithRelative scales the tolerance by max(1, |a|, |b|), so large
// magnitudes are compared by significant digits instead of absolute distance.
func WithRelative() Option {
	return func(o *Options) { o.relative = true }
}

// gatherOptions applies opts over the defaults for T.
func gatherOptions[T fixed.Scalar](opts []Option) Options {
	o := Options{relative: DefaultRelative}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.epsilonSet {
		o.epsilon = float64(Epsilon[T]())
	}

	return o
}

// Epsilon returns the default tolerance of T in logical units.
func Epsilon[T fixed.Scalar]() T {
	eps := DefaultEpsilonFloat64
	switch fixed.KindOf[T]() {
	case fixed.KindFixed:
		return DefaultEpsilonFixed
	case fixed.KindFloat32:
		eps = DefaultEpsilonFloat32
	}

	return T(eps)
}

// EpsilonOf returns the tolerance that IsEqual would use for T with opts.
func EpsilonOf[T fixed.Scalar](opts ...Option) float64 {
	return gatherOptions[T](opts).epsilon
}
