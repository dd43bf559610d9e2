package geom

import "math"

// Trig results are truncated to TrigDigits decimals so that replays produce
// the same values on every platform's libm.
const TrigDigits = 4

// Cos is math.Cos truncated to TrigDigits.
func Cos(x float64) float64 { return Truncate(math.Cos(x), TrigDigits) }

// Sin is math.Sin truncated to TrigDigits.
func Sin(x float64) float64 { return Truncate(math.Sin(x), TrigDigits) }

// Tan is math.Tan truncated to TrigDigits.
func Tan(x float64) float64 { return Truncate(math.Tan(x), TrigDigits) }

// Atan2 is math.Atan2 truncated to TrigDigits. The result is in radians.
func Atan2(y, x float64) float64 { return Truncate(math.Atan2(y, x), TrigDigits) }

// Truncate rounds x towards negative infinity at the given number of
// decimals.
func Truncate(x float64, digits int) float64 {
	m := math.Pow(10, float64(digits))
	return math.Floor(x*m) / m
}
