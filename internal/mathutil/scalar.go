package mathutil

// Epsilon is the geometric tolerance used throughout the tracer: tangent
// discriminants, hit-point offsets and hemisphere checks.
const Epsilon = 1e-5

// Lerp interpolates between two scalars by t (unclamped).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Saturate clamps v to [0, 1].
func Saturate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
