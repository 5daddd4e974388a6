package motion

import "math"

func clampF(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func clamp01(v float64) float64 { return clampF(v, 0, 1) }

// euclidMod returns x mod m with the result in [0, m), unlike math.Mod which
// keeps the sign of x.
func euclidMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// wrapAngle maps an angle into the principal interval around zero, one full
// turn wide.
func wrapAngle(a float64) float64 {
	return euclidMod(a+math.Pi, 2*math.Pi) - math.Pi
}
