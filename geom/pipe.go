package geom

import "math"

// PipeSide names the edge of the source rect a pipe leaves from.
type PipeSide int

const (
	PipeRight PipeSide = iota
	PipeLeft
	PipeUp
	PipeDown
)

func (s PipeSide) String() string {
	switch s {
	case PipeRight:
		return "right"
	case PipeLeft:
		return "left"
	case PipeUp:
		return "up"
	case PipeDown:
		return "down"
	}
	return "unknown"
}

// PipeLayout picks the side of a that a corridor towards b leaves from.
//
// Separated rects are checked in the order right, left, up, down. Overlapping
// rects use the axis with the larger centre offset, horizontal on ties.
// Identical centres give PipeRight with ErrAmbiguousPipeLayout.
func PipeLayout(a, b Rect) (PipeSide, error) {
	switch {
	case b.MinX() >= a.MaxX():
		return PipeRight, nil
	case b.MaxX() <= a.MinX():
		return PipeLeft, nil
	case b.MaxY() <= a.MinY():
		return PipeUp, nil
	case b.MinY() >= a.MaxY():
		return PipeDown, nil
	}

	d := b.Center().Sub(a.Center())
	switch {
	case d.X == 0 && d.Y == 0:
		return PipeRight, ErrAmbiguousPipeLayout
	case math.Abs(d.X) >= math.Abs(d.Y):
		if d.X < 0 {
			return PipeLeft, nil
		}
		return PipeRight, nil
	case d.Y < 0:
		return PipeUp, nil
	default:
		return PipeDown, nil
	}
}

// PipeRect returns the corridor rectangle leaving a towards b. It is diameter
// thick, centred on a's centre line and extends length beyond a's edge. A
// length of zero or less spans the gap to b's facing edge instead (zero for
// overlapping rects).
//
// A diameter of zero or less yields the zero Rect. For rects with identical
// centres the rightward pipe is returned with ErrAmbiguousPipeLayout.
func PipeRect(a, b Rect, diameter, length float64) (Rect, error) {
	if diameter <= 0 {
		return Rect{}, nil
	}

	side, err := PipeLayout(a, b)
	if length <= 0 {
		length = gap(a, b, side)
	}

	c := a.Center()
	half := diameter / 2
	switch side {
	case PipeLeft:
		return R(a.MinX()-length, c.Y-half, length, diameter), err
	case PipeUp:
		return R(c.X-half, a.MinY()-length, diameter, length), err
	case PipeDown:
		return R(c.X-half, a.MaxY(), diameter, length), err
	default:
		return R(a.MaxX(), c.Y-half, length, diameter), err
	}
}

func gap(a, b Rect, side PipeSide) float64 {
	var g float64
	switch side {
	case PipeRight:
		g = b.MinX() - a.MaxX()
	case PipeLeft:
		g = a.MinX() - b.MaxX()
	case PipeUp:
		g = a.MinY() - b.MaxY()
	case PipeDown:
		g = b.MinY() - a.MaxY()
	}
	return max(g, 0)
}
