// Package calc holds the pure arithmetic helpers of barlib: the greatest
// common divisor of two integers and the surface area and volume of a sphere.
package calc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type accepted as a radius.
type Number interface {
	constraints.Integer | constraints.Float
}

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. The loop runs on the unsigned magnitudes of a and b,
// so GCD(-128, 6) is 2 even for int8. The result is non-negative except when
// it is 2^(n-1) of an n-bit signed T (GCD(math.MinInt, 0) for instance),
// which T cannot hold and which wraps to T's minimum value.
// GCD(a, 0) is |a| and GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	return T(x)
}

// magnitude returns |v| as a uint64 without overflowing at the minimum
// signed value.
func magnitude[T constraints.Integer](v T) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// SphereCalc returns the surface area (4πr²) and the volume (4/3πr³) of a
// sphere of radius r. The radius is not validated: negative values give a
// negative volume and overflow yields +Inf or NaN.
func SphereCalc[T Number](r T) (area, volume float64) {
	f := float64(r)
	area = 4 * math.Pi * f * f
	volume = 4.0 / 3.0 * math.Pi * f * f * f
	return area, volume
}

// Sphere is a named SphereCalc result.
type Sphere struct {
	Radius float64
	Area   float64
	Volume float64
}

// NewSphere computes the metrics of a sphere of radius r.
func NewSphere(r float64) Sphere {
	area, volume := SphereCalc(r)
	return Sphere{Radius: r, Area: area, Volume: volume}
}
