// Package geom implements the 2D geometry used by gameplay code every frame.
//
// Coordinates are screen space: X grows to the right and Y grows down.
// Directions are float64 radians in the canonical range (-π, π]; every
// function that produces a direction normalizes it before returning.
//
// # Boundary conventions
//
// PointInRect is half-open: a rect contains its min edges but not its max
// edges, so tiles sharing an edge never both claim a point. LinesFromRect
// returns edges in the fixed order top, right, bottom, left (clockwise on
// screen), see EdgeTop.
//
// # Fallbacks
//
// Nothing in this package panics on degenerate input. Functions that can
// meet a degenerate case return a documented fallback together with an
// error (ErrDegenerateVector, ErrDegenerateSegment, ErrAmbiguousPipeLayout)
// or a bool, so the frame loop can keep going:
//
//	dir, err := geom.NormalizeVector(v)
//	if err != nil {
//	    // dir is the zero vector
//	}
//
// Random helpers take a Rand, which *rng.Source satisfies.
package geom
