package geom

import "math"

// RandomPointInAnnulus draws a point inside outer (inset by outerPad) but
// outside inner (inset by innerPad): the "donut" between two rects.
//
// The region is split into up to four bands around the inner rect, left and
// right at full height, top and bottom between them. A band is chosen with
// probability proportional to its area and sampled uniformly, so the result
// is uniform over the donut and takes a fixed number of draws. The returned
// point never satisfies PointInRect against the padded inner rect.
//
// When the padded outer rect has no area, or the padded inner rect covers
// it, there is nothing to sample: the padded outer centre is returned with
// false and no draws are made.
func RandomPointInAnnulus(r Rand, outer Rect, outerPad Size, inner Rect, innerPad Size) (Point, bool) {
	o := outer.Inset(outerPad)
	in := inner.Inset(innerPad)
	if o.Empty() {
		return o.Center(), false
	}

	c, overlap := in.Intersect(o)
	if !overlap {
		return RandomPointInRect(r, o), true
	}

	bands := [4]Rect{
		R(o.MinX(), o.MinY(), c.MinX()-o.MinX(), o.Size.H), // left
		R(c.MaxX(), o.MinY(), o.MaxX()-c.MaxX(), o.Size.H), // right
		R(c.MinX(), o.MinY(), c.Size.W, c.MinY()-o.MinY()), // top
		R(c.MinX(), c.MaxY(), c.Size.W, o.MaxY()-c.MaxY()), // bottom
	}

	var total float64
	for _, b := range bands {
		total += b.Area()
	}
	if total <= 0 {
		return o.Center(), false
	}

	pick, _ := r.Range(0, total)
	chosen := -1
	for i, b := range bands {
		if b.Area() <= 0 {
			continue
		}
		chosen = i
		if pick < b.Area() {
			break
		}
		pick -= b.Area()
	}

	p := RandomPointInRect(r, bands[chosen])
	// Band edges are recomputed sums and can sit an ulp off the inner
	// rect, and the left and top bands end on the inner min edge, which
	// the inner rect owns. Snap anything on the wrong side back out.
	switch chosen {
	case 0:
		if p.X >= in.MinX() {
			p.X = math.Nextafter(in.MinX(), math.Inf(-1))
		}
	case 1:
		if p.X < in.MaxX() {
			p.X = in.MaxX()
		}
	case 2:
		if p.Y >= in.MinY() {
			p.Y = math.Nextafter(in.MinY(), math.Inf(-1))
		}
	case 3:
		if p.Y < in.MaxY() {
			p.Y = in.MaxY()
		}
	}
	return p, true
}
