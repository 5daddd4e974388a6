package motion

import "image/color"

// ColorPoint is a linear RGBA 4-tuple usable as a curve point. Channels are
// unbounded during arithmetic so that gradients can over- and undershoot
// freely; Color clamps on conversion.
type ColorPoint struct {
	R, G, B, A float64
}

// RGBA returns the color point (r, g, b, a).
func RGBA(r, g, b, a float64) ColorPoint {
	return ColorPoint{R: r, G: g, B: b, A: a}
}

// ColorPointOf converts a stdlib color into a color point with channels in
// [0, 1].
func ColorPointOf(c color.Color) ColorPoint {
	r, g, b, a := c.RGBA()
	return RGBA(
		float64(r)/0xffff,
		float64(g)/0xffff,
		float64(b)/0xffff,
		float64(a)/0xffff,
	)
}

// Add is channel-wise addition.
func (c ColorPoint) Add(o ColorPoint) ColorPoint {
	return RGBA(c.R+o.R, c.G+o.G, c.B+o.B, c.A+o.A)
}

// Sub is channel-wise subtraction.
func (c ColorPoint) Sub(o ColorPoint) ColorPoint {
	return RGBA(c.R-o.R, c.G-o.G, c.B-o.B, c.A-o.A)
}

// Scale multiplies every channel by f.
func (c ColorPoint) Scale(f float64) ColorPoint {
	return RGBA(c.R*f, c.G*f, c.B*f, c.A*f)
}

// AddScalar offsets every channel by f.
func (c ColorPoint) AddScalar(f float64) ColorPoint {
	return RGBA(c.R+f, c.G+f, c.B+f, c.A+f)
}

// Color converts to a 16-bit stdlib color, clamping channels to [0, 1].
func (c ColorPoint) Color() color.Color {
	return color.RGBA64{
		R: uint16(clamp01(c.R) * 0xffff),
		G: uint16(clamp01(c.G) * 0xffff),
		B: uint16(clamp01(c.B) * 0xffff),
		A: uint16(clamp01(c.A) * 0xffff),
	}
}
