package anim

import "github.com/lox/kinemath/geom"

// Lerp interpolates from start to end over duration seconds, t seconds in.
// t is clamped to [0, duration]. A non-positive duration yields end.
//
// Within [0, duration] Lerp agrees exactly with Evaluate on the two
// keyframe track {start, end} of that duration.
func Lerp(start, end, t, duration float64) float64 {
	if duration <= 0 {
		return end
	}
	return mix(start, end, geom.Clamp(t/duration, 0, 1))
}

// LerpFrame is Lerp at a frame index at FrameRate.
func LerpFrame(start, end float64, frame int, duration float64) float64 {
	return Lerp(start, end, FrameElapsed(frame), duration)
}
