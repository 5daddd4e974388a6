package motion

import "math"

// PitchYaw is an orientation without a roll component, expressed as yaw and
// pitch in radians. Under Normalize, yaw wraps around the ±π boundary and
// pitch clamps to [-π/2, π/2]; values are not required to stay normalized
// between operations.
type PitchYaw struct {
	// Y is the yaw rotation.
	Y float64
	// P is the pitch rotation.
	P float64
}

// NewPitchYaw returns the orientation with the given yaw and pitch.
func NewPitchYaw(yaw, pitch float64) PitchYaw {
	return PitchYaw{Y: yaw, P: pitch}
}

// PitchYawFromVec extracts yaw and pitch from a direction vector, which need
// not be unit length. Yaw is undefined at the poles.
func PitchYawFromVec(dir Vec3) PitchYaw {
	yaw := math.Atan2(-dir.X, -dir.Z)
	pitch := math.Asin(dir.Y / dir.Norm())
	return NewPitchYaw(yaw, pitch)
}

// ToUnitVec returns the unit look direction. Yaw 0, pitch 0 points along -Z.
func (py PitchYaw) ToUnitVec() Vec3 {
	return SampleUnitSphere(py.Y, py.P)
}

// Length is the Euclidean length of the raw (yaw, pitch) pair.
func (py PitchYaw) Length() float64 {
	return math.Hypot(py.Y, py.P)
}

// Distance is the Euclidean length of the wrapped delta to other.
func (py PitchYaw) Distance(other PitchYaw) float64 {
	return py.Sub(other).Length()
}

// ClampYaw limits yaw to [min, max], leaving pitch unchanged.
func (py PitchYaw) ClampYaw(min, max float64) PitchYaw {
	return NewPitchYaw(clampF(py.Y, min, max), py.P)
}

// ClampPitch limits pitch to [min, max], leaving yaw unchanged.
func (py PitchYaw) ClampPitch(min, max float64) PitchYaw {
	return NewPitchYaw(py.Y, clampF(py.P, min, max))
}

// Clamp limits both axes to [min, max].
func (py PitchYaw) Clamp(min, max float64) PitchYaw {
	return py.ClampYaw(min, max).ClampPitch(min, max)
}

// Normalize wraps yaw into the principal interval and clamps pitch to
// [-π/2, π/2]. Normalize is idempotent.
func (py PitchYaw) Normalize() PitchYaw {
	return PitchYaw{
		Y: wrapAngle(py.Y),
		P: clampF(py.P, -math.Pi/2, math.Pi/2),
	}
}

// Flip returns the orientation mirrored through the origin of both axes.
func (py PitchYaw) Flip() PitchYaw {
	return NewPitchYaw(
		2*math.Pi-(math.Pi+py.Y)-math.Pi,
		(math.Pi-(math.Pi/2+py.P))-math.Pi/2,
	)
}

// Sub subtracts other, taking the shortest signed path across the yaw wrap
// boundary: the yaw delta is mapped into the principal interval, so
// subtracting across ±π crosses the boundary instead of going the long way
// around. Pitch subtracts plainly.
func (py PitchYaw) Sub(other PitchYaw) PitchYaw {
	return NewPitchYaw(wrapAngle(py.Y-other.Y), py.P-other.P)
}

// Add is component-wise.
func (py PitchYaw) Add(other PitchYaw) PitchYaw {
	return NewPitchYaw(py.Y+other.Y, py.P+other.P)
}

// Scale is component-wise.
func (py PitchYaw) Scale(f float64) PitchYaw {
	return NewPitchYaw(py.Y*f, py.P*f)
}

// StepToward moves each axis toward target by at most maxDelta along its
// wrapped shortest path, snapping an axis onto the target when it is within
// the budget, then normalizes. Each axis independently gets the full budget,
// so diagonal motion can cover more combined angular distance than maxDelta
// per step.
func (py PitchYaw) StepToward(target PitchYaw, maxDelta float64) PitchYaw {
	var out PitchYaw
	delta := target.Sub(py)

	if math.Abs(delta.Y) < maxDelta {
		out.Y = target.Y
	} else {
		out.Y = py.Y + math.Copysign(maxDelta, delta.Y)
	}

	if math.Abs(delta.P) < maxDelta {
		out.P = target.P
	} else {
		out.P = py.P + math.Copysign(maxDelta, delta.P)
	}

	return out.Normalize()
}

// ToRotation returns the equivalent quaternion rotation: yaw about +Y
// composed with pitch about -X.
func (py PitchYaw) ToRotation() Rotation {
	return RotationY(py.Y).Mul(RotationX(-py.P))
}

// Clamped converts to the hard-clamped representation with default bounds.
func (py PitchYaw) Clamped() PitchYawClamped {
	return NewPitchYawClamped(py.Y, py.P)
}

// SampleUnitSphere returns the unit direction at the given yaw and pitch,
// with yaw 0 pointing along -Z and positive pitch rising toward +Y.
func SampleUnitSphere(yaw, pitch float64) Vec3 {
	y := math.Sin(pitch)
	xz := math.Cos(pitch)
	return V3(-math.Sin(yaw)*xz, y, -math.Cos(yaw)*xz)
}
