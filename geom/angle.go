package geom

import "math"

const (
	twoPi  = 2 * math.Pi
	halfPi = math.Pi / 2
)

// NormalizeAngle reduces a into (-π, π] with a single modulo, so very large
// inputs cost the same as small ones. NaN and ±Inf yield NaN.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a > math.Pi {
		a -= twoPi
	} else if a <= -math.Pi {
		a += twoPi
	}
	return a
}

// AngularDelta returns the signed shortest rotation from a to b. The result
// is in (-π, π]; positive means turning towards increasing angles.
func AngularDelta(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// StepToward turns current towards target by at most maxStep along the
// shortest path. When target is within reach it is returned exactly
// (normalized), so repeated calls land on it without overshooting.
func StepToward(current, target, maxStep float64) float64 {
	maxStep = math.Abs(maxStep)
	d := AngularDelta(current, target)
	if math.Abs(d) <= maxStep {
		return NormalizeAngle(target)
	}
	if d < 0 {
		return NormalizeAngle(current - maxStep)
	}
	return NormalizeAngle(current + maxStep)
}

// RandomDirection returns base perturbed by a uniform offset in
// [-|offset|, |offset|], normalized.
func RandomDirection(r Rand, base, offset float64) float64 {
	offset = math.Abs(offset)
	d, _ := r.Range(base-offset, base+offset)
	return NormalizeAngle(d)
}

// DegreesToDirection converts whole degrees to a normalized direction.
func DegreesToDirection(deg int) float64 {
	return NormalizeAngle(float64(deg) * math.Pi / 180)
}

// DirectionToDegrees converts a direction to degrees in (-180, 180].
func DirectionToDegrees(dir float64) float64 {
	return NormalizeAngle(dir) * 180 / math.Pi
}

// Quadrant identifies one of the four quarter turns around a heading.
type Quadrant int

const (
	Quadrant1 Quadrant = iota + 1
	Quadrant2
	Quadrant3
	Quadrant4
)

// HeadingQuadrant returns the quadrant an angle falls into, counting quarter
// turns from 0.
func HeadingQuadrant(rad float64) Quadrant {
	return quadrantOf(rad)
}

// QuadrantOf returns the quadrant of p as seen from origin facing heading.
// Quadrant1 spans the quarter turn ending at the heading, Quadrant2 the
// quarter turn starting at it.
func QuadrantOf(p, origin Point, heading float64) Quadrant {
	rad := math.Atan2(p.Y-origin.Y, p.X-origin.X) - (heading - halfPi)
	return quadrantOf(rad)
}

func quadrantOf(rad float64) Quadrant {
	rad = math.Mod(rad, twoPi)
	if rad < 0 {
		rad += twoPi
	}
	q := Quadrant(rad/halfPi) + 1
	return min(q, Quadrant4)
}
