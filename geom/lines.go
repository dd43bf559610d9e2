package geom

// Indexes into the array returned by LinesFromRect.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// LinesFromRect returns the four edges of rect inset by padding, clockwise on
// screen starting with the top edge. Each edge ends where the next starts, so
// the result is a closed polygon:
//
//	A ── top ──▶ B
//	▲            │
//	left       right
//	│            ▼
//	D ◀─ bottom ─ C
func LinesFromRect(rect Rect, padding Size) [4]Segment {
	r := rect.Inset(padding)
	a := Point{X: r.MinX(), Y: r.MinY()}
	b := Point{X: r.MaxX(), Y: r.MinY()}
	c := Point{X: r.MaxX(), Y: r.MaxY()}
	d := Point{X: r.MinX(), Y: r.MaxY()}
	return [4]Segment{
		EdgeTop:    {Start: a, End: b},
		EdgeRight:  {Start: b, End: c},
		EdgeBottom: {Start: c, End: d},
		EdgeLeft:   {Start: d, End: a},
	}
}

// LinesFromCenterSize is LinesFromRect for a rect given by its centre.
func LinesFromCenterSize(center Point, size, padding Size) [4]Segment {
	return LinesFromRect(RectFromCenter(center, size), padding)
}
