package geom

// PointInRect reports whether p lies in rect. Min edges are inside, max edges
// are outside, so an empty rect contains nothing.
func PointInRect(p Point, rect Rect) bool {
	return p.X >= rect.MinX() && p.X < rect.MaxX() &&
		p.Y >= rect.MinY() && p.Y < rect.MaxY()
}

// Contains is PointInRect as a method.
func (r Rect) Contains(p Point) bool {
	return PointInRect(p, r)
}

// SafePoint clamps p into rect shrunk by padding. The clamp is closed on both
// edges. An axis whose padded extent is not positive collapses to the centre
// of rect on that axis.
func SafePoint(p Point, rect Rect, padding Size) Point {
	c := rect.Center()
	x, y := c.X, c.Y
	if w := rect.Size.W - 2*padding.W; w > 0 {
		x = Clamp(p.X, rect.MinX()+padding.W, rect.MaxX()-padding.W)
	}
	if h := rect.Size.H - 2*padding.H; h > 0 {
		y = Clamp(p.Y, rect.MinY()+padding.H, rect.MaxY()-padding.H)
	}
	return Point{X: x, Y: y}
}

// RandomPointInRect draws X and Y independently and uniformly over the
// closed extent of rect.
func RandomPointInRect(r Rand, rect Rect) Point {
	x, _ := r.Range(rect.MinX(), rect.MaxX())
	y, _ := r.Range(rect.MinY(), rect.MaxY())
	return Point{X: x, Y: y}
}
