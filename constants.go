package motion

import "math"

// Default clamp bounds for PitchYawClamped.
const (
	// DefaultPitchClamp bounds pitch a hair under the poles.
	DefaultPitchClamp = math.Pi/2 - clampMargin

	// DefaultYawClamp bounds yaw a hair inside the wrap boundary.
	DefaultYawClamp = math.Pi - clampMargin

	// clampMargin keeps the default bounds strictly inside the singular
	// angles: a clamped value must never reach a pole or the ±π seam.
	clampMargin = 0.001
)

// Spring-damper constants.
const (
	// SpringMass is the fixed oscillator mass shared by every spring
	// stepper. It is not configurable per instance; damping and spring
	// constants are expressed against this mass.
	SpringMass = 1.0
)

// Quaternion interpolation constants.
const (
	// slerpDotThreshold is the quaternion dot product above which Slerp
	// falls back to normalized linear interpolation to avoid dividing by a
	// vanishing sine.
	slerpDotThreshold = 0.9995
)
