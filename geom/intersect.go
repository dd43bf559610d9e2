package geom

import "math"

// SegmentsIntersect reports whether segment p1-p2 crosses segment p3-p4 and
// where. Both segments are treated as finite, endpoints included, so
// segments that touch at an end do intersect.
//
// Parallel segments never intersect, including collinear ones that overlap,
// and so do degenerate (zero-length) segments.
func SegmentsIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d2.Y*d1.X - d2.X*d1.Y
	if denom == 0 {
		return Point{}, false
	}

	off := p1.Sub(p3)
	u1 := (d2.X*off.Y - d2.Y*off.X) / denom
	u2 := (d1.X*off.Y - d1.Y*off.X) / denom
	if u1 < 0 || u1 > 1 || u2 < 0 || u2 > 1 {
		return Point{}, false
	}
	return Point{X: p1.X + u1*d1.X, Y: p1.Y + u1*d1.Y}, true
}

// PointSegmentDistance returns the distance from pt to the closest point of
// segment p1-p2, and that point. A degenerate segment is treated as the
// single point p1.
func PointSegmentDistance(pt, p1, p2 Point) (float64, Point) {
	d := p2.Sub(p1)
	l2 := d.Dot(d)
	if l2 == 0 {
		return Distance(pt, p1), p1
	}
	t := Clamp(pt.Sub(p1).Dot(d)/l2, 0, 1)
	closest := Point{X: p1.X + t*d.X, Y: p1.Y + t*d.Y}
	return Distance(pt, closest), closest
}

// PointLineDistance is PointSegmentDistance for the infinite line through p1
// and p2: the returned point is the foot of the perpendicular from pt.
func PointLineDistance(pt, p1, p2 Point) (float64, Point) {
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	c := p2.X*p1.Y - p1.X*p2.Y
	denom := a*a + b*b
	if denom == 0 {
		return Distance(pt, p1), p1
	}
	foot := Point{
		X: (b*b*pt.X - a*b*pt.Y - a*c) / denom,
		Y: (a*a*pt.Y - a*b*pt.X - b*c) / denom,
	}
	return math.Abs(a*pt.X+b*pt.Y+c) / math.Sqrt(denom), foot
}
