package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           Point
		ok             bool
	}{
		{"crossing diagonals", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0), Pt(1, 1), true},
		{"parallel", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1), Point{}, false},
		{"collinear overlap", Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(6, 0), Point{}, false},
		{"lines cross beyond segment", Pt(0, 0), Pt(1, 1), Pt(3, 0), Pt(3, 5), Point{}, false},
		{"touching at endpoint", Pt(0, 0), Pt(2, 0), Pt(2, -1), Pt(2, 1), Pt(2, 0), true},
		{"T junction", Pt(0, 0), Pt(4, 0), Pt(1, 0), Pt(1, 3), Pt(1, 0), true},
		{"degenerate first", Pt(1, 1), Pt(1, 1), Pt(0, 0), Pt(2, 2), Point{}, false},
		{"degenerate both", Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1), Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SegmentsIntersect(tt.p1, tt.p2, tt.p3, tt.p4)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)

			// argument order does not matter
			_, swapped := Seg(tt.p3, tt.p4).Intersect(Seg(tt.p1, tt.p2))
			assert.Equal(t, tt.ok, swapped)
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		pt      Point
		p1, p2  Point
		dist    float64
		closest Point
	}{
		{"perpendicular inside", Pt(2, 3), Pt(0, 0), Pt(4, 0), 3, Pt(2, 0)},
		{"beyond end", Pt(7, 4), Pt(0, 0), Pt(4, 0), 5, Pt(4, 0)},
		{"before start", Pt(-3, -4), Pt(0, 0), Pt(4, 0), 5, Pt(0, 0)},
		{"on segment", Pt(1, 1), Pt(0, 0), Pt(2, 2), 0, Pt(1, 1)},
		{"degenerate", Pt(4, 5), Pt(1, 1), Pt(1, 1), 5, Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := PointSegmentDistance(tt.pt, tt.p1, tt.p2)
			assert.InDelta(t, tt.dist, d, 1e-12)
			assert.InDelta(t, tt.closest.X, c.X, 1e-12)
			assert.InDelta(t, tt.closest.Y, c.Y, 1e-12)
		})
	}
}

func TestPointLineDistance(t *testing.T) {
	// the foot of the perpendicular may lie outside the segment
	d, foot := PointLineDistance(Pt(7, 4), Pt(0, 0), Pt(4, 0))
	assert.InDelta(t, 4, d, 1e-12)
	assert.InDelta(t, 7, foot.X, 1e-12)
	assert.InDelta(t, 0, foot.Y, 1e-12)

	d, foot = PointLineDistance(Pt(0, 2), Pt(0, 0), Pt(2, 2))
	require.InDelta(t, 1.4142135623730951, d, 1e-12)
	assert.InDelta(t, 1, foot.X, 1e-12)
	assert.InDelta(t, 1, foot.Y, 1e-12)

	d, foot = PointLineDistance(Pt(3, 4), Pt(0, 0), Pt(0, 0))
	assert.Equal(t, 5.0, d)
	assert.Equal(t, Pt(0, 0), foot)
}
