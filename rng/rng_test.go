package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/kinemath/internal/randutil"
)

func TestParkMillerKnownSequence(t *testing.T) {
	s := New(1)
	want := []int{16807, 282475249, 1622650073, 984943658, 1144108930}
	for i, w := range want {
		assert.Equal(t, w, s.Sample(), "draw %d", i)
	}
}

func TestZeroSeedIsSubstituted(t *testing.T) {
	zero := New(0)
	sub := New(pmZeroSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, sub.Sample(), zero.Sample())
	}
}

func TestSeededSourcesAgree(t *testing.T) {
	a := New(7)
	b := New(99)
	a.SetSeed(42)
	b.SetSeed(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Sample(), b.Sample(), "draw %d", i)
	}
}

func TestSampleTracking(t *testing.T) {
	s := New(42)
	assert.True(t, s.Seeded())
	assert.Equal(t, int64(0), s.CallCount())

	v := s.Sample()
	assert.Equal(t, int64(1), s.CallCount())
	assert.Equal(t, v, s.LastResult())

	_, err := s.Range(0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.CallCount())

	// reseeding keeps history
	s.SetSeed(42)
	assert.Equal(t, int64(2), s.CallCount())
	assert.Equal(t, v, s.Sample())
	assert.Equal(t, int64(3), s.CallCount())
}

func TestSampleSystemIsNotTracked(t *testing.T) {
	s := New(42, WithSystem(randutil.New(1)))
	s.SampleSystem()
	_, err := s.RangeSystem(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.CallCount())
}

func TestSystemMode(t *testing.T) {
	a := New(42, WithSystem(randutil.New(5)))
	b := New(42, WithSystem(randutil.New(5)))
	a.SetSeeded(false)
	b.SetSeeded(false)
	assert.False(t, a.Seeded())

	for i := 0; i < 50; i++ {
		v := a.Sample()
		assert.Equal(t, b.Sample(), v)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, MaxSample)
	}
	assert.Equal(t, int64(50), a.CallCount())

	// back to the seeded stream where it left off
	a.SetSeeded(true)
	assert.Equal(t, New(42).Sample(), a.Sample())
}

func TestRangeBounds(t *testing.T) {
	s := New(3)
	for i := 0; i < 10000; i++ {
		v, err := s.Range(-2.5, 4)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -2.5)
		require.LessOrEqual(t, v, 4.0)
	}

	v, err := s.Range(5, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestRangeInvalid(t *testing.T) {
	s := New(3)
	v, err := s.Range(10, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, 10.0, v)
	assert.Equal(t, int64(0), s.CallCount())

	v, err = s.RangeSystem(2, -2)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, 2.0, v)
}

func TestScaleEndpoints(t *testing.T) {
	assert.Equal(t, 1.0, scale(0, 1, 3))
	assert.Equal(t, 3.0, scale(rangeResolution, 1, 3))
	assert.Equal(t, 2.0, scale(rangeResolution/2, 1, 3))
}

func TestDegree(t *testing.T) {
	s := New(11)
	for i := 0; i < 2000; i++ {
		d := s.Degree()
		require.GreaterOrEqual(t, d, -179)
		require.LessOrEqual(t, d, 180)
	}
}
