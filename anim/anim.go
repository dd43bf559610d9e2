// Package anim maps time onto keyframed animation values.
//
// A Track holds N keyframe values and the N-1 durations (in seconds) of the
// linear transitions between them. The usual pop-in scale animation looks
// like this: 0 → 1.05 over 0.16s, down to 0.98 over 0.08s, settling at 1.0
// over another 0.08s.
//
//	pop := anim.Track{
//	    Values:    []float64{0, 1.05, 0.98, 1},
//	    Durations: []float64{0.16, 0.08, 0.08},
//	}
//	scale, done := anim.EvaluateFrame(pop, frame, anim.Options{Default: 1})
//
// Evaluate works in seconds. EvaluateFrame takes a frame index at FrameRate.
// Player drives a track from a clock.
package anim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lox/kinemath/geom"
)

const (
	// FrameRate is the number of rendered frames per second.
	FrameRate = 60

	// FrameTime is the length of one frame in seconds.
	FrameTime = 1.0 / FrameRate

	// FrameDuration is FrameTime as a time.Duration.
	FrameDuration = time.Second / FrameRate

	// timeEpsilon absorbs rounding in summed durations, so 0.16+0.08+0.08
	// still ends at 0.32.
	timeEpsilon = 1e-9
)

// ErrInvalidTrack is returned by Track.Validate.
var ErrInvalidTrack = errors.New("anim: invalid track")

// State is the phase an evaluation landed in.
type State int

const (
	NotStarted State = iota
	InSegment
	Completed
	Looping
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InSegment:
		return "in-segment"
	case Completed:
		return "completed"
	case Looping:
		return "looping"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Track is a keyframed animation.
type Track struct {
	Values    []float64
	Durations []float64
}

// Validate checks that the track has at least two values, one duration per
// transition and only positive durations.
func (t Track) Validate() error {
	if len(t.Values) < 2 {
		return fmt.Errorf("%w: need at least 2 values, got %d", ErrInvalidTrack, len(t.Values))
	}
	if len(t.Durations) != len(t.Values)-1 {
		return fmt.Errorf("%w: %d values need %d durations, got %d",
			ErrInvalidTrack, len(t.Values), len(t.Values)-1, len(t.Durations))
	}
	for i, d := range t.Durations {
		if !(d > 0) || math.IsInf(d, 1) {
			return fmt.Errorf("%w: duration %d is %g", ErrInvalidTrack, i, d)
		}
	}
	return nil
}

// Total returns the summed duration of the track in seconds.
func (t Track) Total() float64 {
	var total float64
	for _, d := range t.Durations {
		total += d
	}
	return total
}

// Options controls how a track is played.
type Options struct {
	// Default is returned once a non-repeating track has run past its end,
	// and for invalid tracks.
	Default float64

	// Reverse plays the keyframes last to first.
	Reverse bool

	// Repeat wraps time around the track's total duration.
	Repeat bool

	// Step is the caller's per-frame time step in seconds, used to report
	// a repeating track's completion once per cycle. Zero means FrameTime.
	Step float64
}

// Result is the full outcome of an evaluation.
type Result struct {
	Value float64

	// Completed is true once a non-repeating track reaches its end. For a
	// repeating track it is true only on the frame that crosses into a new
	// cycle.
	Completed bool

	State State

	// Segment is the index of the active transition in play order, or -1.
	Segment int

	// Cycle counts completed loops of a repeating track.
	Cycle int
}

// Evaluate returns the track's value elapsed seconds into playback and
// whether the animation has completed. See EvaluateState.
func Evaluate(t Track, elapsed float64, opts Options) (float64, bool) {
	r := EvaluateState(t, elapsed, opts)
	return r.Value, r.Completed
}

// EvaluateFrame is Evaluate for a frame index at FrameRate.
func EvaluateFrame(t Track, frame int, opts Options) (float64, bool) {
	return Evaluate(t, FrameElapsed(frame), opts)
}

// FrameElapsed converts a frame index to seconds.
func FrameElapsed(frame int) float64 {
	return float64(frame) / FrameRate
}

// EvaluateState evaluates t at elapsed seconds.
//
// Time before zero is NotStarted and yields the first keyframe. Time at the
// end of a non-repeating track yields the last keyframe, and beyond it
// opts.Default; both report Completed. A repeating track wraps elapsed
// modulo its total duration and reports Looping after the first cycle.
// Invalid tracks yield opts.Default as Completed.
func EvaluateState(t Track, elapsed float64, opts Options) Result {
	if t.Validate() != nil {
		return Result{Value: opts.Default, Completed: true, State: Completed, Segment: -1}
	}
	p := playOrder{track: t, reverse: opts.Reverse}

	if elapsed < 0 {
		return Result{Value: p.value(0), State: NotStarted, Segment: -1}
	}

	total := t.Total()
	if opts.Repeat {
		return p.loop(elapsed, total, opts.Step)
	}

	switch {
	case elapsed > total+timeEpsilon:
		return Result{Value: opts.Default, Completed: true, State: Completed, Segment: -1}
	case elapsed >= total-timeEpsilon:
		last := len(t.Durations) - 1
		return Result{Value: p.value(last + 1), Completed: true, State: Completed, Segment: last}
	}
	return p.at(elapsed)
}

// playOrder indexes a track in playback order.
type playOrder struct {
	track   Track
	reverse bool
}

func (p playOrder) value(i int) float64 {
	if p.reverse {
		return p.track.Values[len(p.track.Values)-1-i]
	}
	return p.track.Values[i]
}

func (p playOrder) duration(i int) float64 {
	if p.reverse {
		return p.track.Durations[len(p.track.Durations)-1-i]
	}
	return p.track.Durations[i]
}

// at interpolates within the track for 0 <= elapsed <= total.
func (p playOrder) at(elapsed float64) Result {
	n := len(p.track.Durations)
	var start float64
	for i := 0; i < n; i++ {
		d := p.duration(i)
		end := start + d
		if elapsed < end || i == n-1 {
			f := geom.Clamp((elapsed-start)/d, 0, 1)
			return Result{
				Value:   mix(p.value(i), p.value(i+1), f),
				State:   InSegment,
				Segment: i,
			}
		}
		start = end
	}
	// unreachable for validated tracks
	return Result{Value: p.value(0), State: InSegment}
}

func (p playOrder) loop(elapsed, total, step float64) Result {
	if step <= 0 {
		step = FrameTime
	}
	cycles := math.Floor(elapsed / total)
	wrapped := elapsed - cycles*total
	if wrapped >= total-timeEpsilon {
		cycles++
		wrapped = 0
	}
	wrapped = max(wrapped, 0)

	r := p.at(wrapped)
	r.Cycle = int(cycles)
	if cycles >= 1 {
		r.State = Looping
		// a cycle boundary lies in (elapsed-step, elapsed]
		r.Completed = wrapped < step-timeEpsilon
	}
	return r
}

// mix blends a towards b. It returns a exactly at f=0 and b exactly at f=1.
func mix(a, b, f float64) float64 {
	return (1-f)*a + f*b
}
