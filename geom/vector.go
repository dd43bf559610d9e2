package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return math.Sqrt(SquaredDistance(p1, p2))
}

// SquaredDistance returns the squared distance between p1 and p2. Use it for
// comparisons to avoid the square root.
func SquaredDistance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

// Length returns the magnitude of v.
func Length(v Point) float64 {
	return math.Hypot(v.X, v.Y)
}

// NormalizeVector scales v to unit length. The zero vector has no direction
// and is returned unchanged with ErrDegenerateVector.
func NormalizeVector(v Point) (Point, error) {
	l := Length(v)
	if l == 0 {
		return Point{}, ErrDegenerateVector
	}
	return Point{X: v.X / l, Y: v.Y / l}, nil
}

// FromAngle returns the unit vector pointing along dir.
func FromAngle(dir float64) Point {
	return Point{X: math.Cos(dir), Y: math.Sin(dir)}
}

// Clamp limits x to the closed range [lo, hi]. NaN passes through.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
