package geom

import (
	"errors"
	"math"
)

var (
	// ErrDegenerateVector is returned when a zero-length vector has to be
	// normalized.
	ErrDegenerateVector = errors.New("geom: degenerate vector")

	// ErrDegenerateSegment is returned when a zero-length segment is used
	// where a direction is required.
	ErrDegenerateSegment = errors.New("geom: degenerate segment")

	// ErrAmbiguousPipeLayout is returned by PipeRect for rectangles with
	// identical centres.
	ErrAmbiguousPipeLayout = errors.New("geom: ambiguous pipe layout")
)

// Rand is the random source used by the sampling helpers.
type Rand interface {
	// Range returns a uniform value in [min, max].
	Range(min, max float64) (float64, error)
}

// Point is a position or vector in 2D space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Size is a width and height pair. It is also used for per-axis padding.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle given by its min corner and size.
// Sizes are expected to be non-negative.
type Rect struct {
	Origin Point
	Size   Size
}

// R builds a Rect from x, y, width and height.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// RectFromCenter builds a Rect of the given size centred on c.
func RectFromCenter(c Point, size Size) Rect {
	return R(c.X-size.W/2, c.Y-size.H/2, size.W, size.H)
}

// MinX returns the left edge of r.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge of r.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge of r.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.W }

// MaxY returns the bottom edge of r.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.H }

// Center returns the centre point of r.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.W/2, Y: r.Origin.Y + r.Size.H/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}

// Area returns W*H.
func (r Rect) Area() float64 {
	return r.Size.W * r.Size.H
}

// Inset shrinks r by padding on every side. An axis the padding consumes
// entirely collapses to zero extent on the centre line.
func (r Rect) Inset(padding Size) Rect {
	c := r.Center()
	out := R(r.Origin.X+padding.W, r.Origin.Y+padding.H, r.Size.W-2*padding.W, r.Size.H-2*padding.H)
	if out.Size.W < 0 {
		out.Origin.X, out.Size.W = c.X, 0
	}
	if out.Size.H < 0 {
		out.Origin.Y, out.Size.H = c.Y, 0
	}
	return out
}

// Intersect returns the overlap of r and o. Rects that only touch along an
// edge do not overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if r.MinX() < o.MaxX() && r.MaxX() > o.MinX() &&
		r.MinY() < o.MaxY() && r.MaxY() > o.MinY() {
		minX := max(r.MinX(), o.MinX())
		minY := max(r.MinY(), o.MinY())
		maxX := min(r.MaxX(), o.MaxX())
		maxY := min(r.MaxY(), o.MaxY())
		return R(minX, minY, maxX-minX, maxY-minY), true
	}
	return Rect{}, false
}

// Segment is a finite line between two points. Start may equal End.
type Segment struct {
	Start, End Point
}

// Seg is shorthand for Segment{a, b}.
func Seg(a, b Point) Segment {
	return Segment{Start: a, End: b}
}

// Length returns the length of s.
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Direction returns the heading from Start to End. A degenerate segment has
// no heading: 0 is returned with ErrDegenerateSegment.
func (s Segment) Direction() (float64, error) {
	if s.Start == s.End {
		return 0, ErrDegenerateSegment
	}
	return NormalizeAngle(math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)), nil
}

// Intersect reports where s crosses o, see SegmentsIntersect.
func (s Segment) Intersect(o Segment) (Point, bool) {
	return SegmentsIntersect(s.Start, s.End, o.Start, o.End)
}
