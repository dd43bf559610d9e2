package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeRectLayouts(t *testing.T) {
	room := R(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		side  PipeSide
		want  Rect
	}{
		{"right", R(20, 0, 10, 10), PipeRight, R(10, 4, 5, 2)},
		{"left", R(-30, 3, 10, 10), PipeLeft, R(-5, 4, 5, 2)},
		{"up", R(2, -25, 6, 10), PipeUp, R(4, -5, 2, 5)},
		{"down", R(0, 40, 10, 10), PipeDown, R(4, 10, 2, 5)},
		{"diagonal prefers horizontal", R(30, 30, 10, 10), PipeRight, R(10, 4, 5, 2)},
		{"touching right edge", R(10, 0, 5, 5), PipeRight, R(10, 4, 5, 2)},
		{"overlap mostly right", R(6, 1, 10, 10), PipeRight, R(10, 4, 5, 2)},
		{"overlap mostly up", R(1, -6, 10, 10), PipeUp, R(4, -5, 2, 5)},
		{"overlap mostly left", R(-4, 2, 10, 10), PipeLeft, R(-5, 4, 5, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, err := PipeLayout(room, tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.side, side)

			got, err := PipeRect(room, tt.other, 2, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPipeRectAmbiguous(t *testing.T) {
	room := R(0, 0, 10, 10)
	got, err := PipeRect(room, R(2, 2, 6, 6), 2, 5)
	assert.ErrorIs(t, err, ErrAmbiguousPipeLayout)
	assert.Equal(t, R(10, 4, 5, 2), got, "falls back to the rightward pipe")

	got, err = PipeRect(room, room, 2, 0)
	assert.ErrorIs(t, err, ErrAmbiguousPipeLayout)
	assert.Equal(t, R(10, 4, 0, 2), got)
}

func TestPipeRectSpansGap(t *testing.T) {
	room := R(0, 0, 10, 10)

	got, err := PipeRect(room, R(25, 0, 10, 10), 4, 0)
	require.NoError(t, err)
	assert.Equal(t, R(10, 3, 15, 4), got)

	got, err = PipeRect(room, R(0, -12, 10, 4), 4, -1)
	require.NoError(t, err)
	assert.Equal(t, R(3, -8, 4, 8), got)
}

func TestPipeRectZeroDiameter(t *testing.T) {
	got, err := PipeRect(R(0, 0, 10, 10), R(20, 0, 10, 10), 0, 5)
	require.NoError(t, err)
	assert.Equal(t, Rect{}, got)
}

func TestPipeSideString(t *testing.T) {
	assert.Equal(t, "right", PipeRight.String())
	assert.Equal(t, "down", PipeDown.String())
	assert.Equal(t, "unknown", PipeSide(9).String())
}
