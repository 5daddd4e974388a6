package motion

import (
	"math"
	"time"
)

// PitchYawClamped is an orientation without roll whose axes hard-clamp
// instead of wrapping: under Normalize, pitch lands in [-ClampP, ClampP] and
// yaw in [-ClampY, ClampY]. Every value carries its own clamp bounds, so
// different use sites can run different ranges. Because the domain never
// crosses the ±π seam, subtraction is plain component-wise arithmetic.
type PitchYawClamped struct {
	// Y is the yaw rotation.
	Y float64
	// P is the pitch rotation.
	P float64
	// ClampP bounds pitch to [-ClampP, ClampP].
	ClampP float64
	// ClampY bounds yaw to [-ClampY, ClampY].
	ClampY float64
}

// NewPitchYawClamped returns the orientation with the given yaw and pitch and
// the default clamp bounds.
func NewPitchYawClamped(yaw, pitch float64) PitchYawClamped {
	return PitchYawClamped{
		Y:      yaw,
		P:      pitch,
		ClampP: DefaultPitchClamp,
		ClampY: DefaultYawClamp,
	}
}

// NewPitchYawClampedBounds returns the orientation with per-instance clamp
// bounds.
func NewPitchYawClampedBounds(yaw, pitch, clampPitch, clampYaw float64) PitchYawClamped {
	return PitchYawClamped{Y: yaw, P: pitch, ClampP: clampPitch, ClampY: clampYaw}
}

// PitchYawClampedFromVec extracts yaw and pitch from a direction vector,
// with the default clamp bounds. The vector need not be unit length.
func PitchYawClampedFromVec(dir Vec3) PitchYawClamped {
	yaw := math.Atan2(-dir.X, -dir.Z)
	pitch := math.Asin(dir.Y / dir.Norm())
	return NewPitchYawClamped(yaw, pitch)
}

// ToUnitVec returns the unit look direction. Yaw 0, pitch 0 points along -Z.
func (pc PitchYawClamped) ToUnitVec() Vec3 {
	return SampleUnitSphere(pc.Y, pc.P)
}

// Length is the Euclidean length of the raw (yaw, pitch) pair.
func (pc PitchYawClamped) Length() float64 {
	return math.Hypot(pc.Y, pc.P)
}

// Distance is the Euclidean length of the component-wise delta to other.
func (pc PitchYawClamped) Distance(other PitchYawClamped) float64 {
	return pc.Sub(other).Length()
}

// ClampYaw limits yaw to [min, max], leaving pitch unchanged. The result
// carries the default clamp bounds.
func (pc PitchYawClamped) ClampYaw(min, max float64) PitchYawClamped {
	return NewPitchYawClamped(clampF(pc.Y, min, max), pc.P)
}

// ClampPitch limits pitch to [min, max], leaving yaw unchanged. The result
// carries the default clamp bounds.
func (pc PitchYawClamped) ClampPitch(min, max float64) PitchYawClamped {
	return NewPitchYawClamped(pc.Y, clampF(pc.P, min, max))
}

// Clamp limits both axes to [min, max].
func (pc PitchYawClamped) Clamp(min, max float64) PitchYawClamped {
	return pc.ClampYaw(min, max).ClampPitch(min, max)
}

// Normalize hard-clamps both axes to the instance's own bounds. There is no
// wrapping. Normalize is idempotent.
func (pc PitchYawClamped) Normalize() PitchYawClamped {
	pc.P = clampF(pc.P, -pc.ClampP, pc.ClampP)
	pc.Y = clampF(pc.Y, -pc.ClampY, pc.ClampY)
	return pc
}

// Sub is plain component-wise subtraction, keeping the receiver's clamp
// bounds. No wrap handling: the clamped domain never crosses the yaw seam.
func (pc PitchYawClamped) Sub(other PitchYawClamped) PitchYawClamped {
	pc.P -= other.P
	pc.Y -= other.Y
	return pc
}

// Add is component-wise, keeping the receiver's clamp bounds.
func (pc PitchYawClamped) Add(other PitchYawClamped) PitchYawClamped {
	pc.P += other.P
	pc.Y += other.Y
	return pc
}

// Scale is component-wise, keeping the receiver's clamp bounds.
func (pc PitchYawClamped) Scale(f float64) PitchYawClamped {
	pc.P *= f
	pc.Y *= f
	return pc
}

// StepToward moves each axis toward target by at most maxDelta, snapping an
// axis onto the target when it is within the budget, then normalizes against
// the receiver's clamp bounds. Each axis independently gets the full budget,
// so diagonal motion can cover more combined angular distance than maxDelta
// per step.
func (pc PitchYawClamped) StepToward(target PitchYawClamped, maxDelta float64) PitchYawClamped {
	out := pc
	delta := target.Sub(pc)

	if math.Abs(delta.Y) < maxDelta {
		out.Y = target.Y
	} else {
		out.Y = pc.Y + math.Copysign(maxDelta, delta.Y)
	}

	if math.Abs(delta.P) < maxDelta {
		out.P = target.P
	} else {
		out.P = pc.P + math.Copysign(maxDelta, delta.P)
	}

	return out.Normalize()
}

// ToRotation returns the equivalent quaternion rotation: yaw about +Y
// composed with pitch about -X.
func (pc PitchYawClamped) ToRotation() Rotation {
	return RotationY(pc.Y).Mul(RotationX(-pc.P))
}

// PitchYaw converts to the wrapping representation, dropping the bounds.
func (pc PitchYawClamped) PitchYaw() PitchYaw {
	return NewPitchYaw(pc.Y, pc.P)
}

// Advance integrates a yaw/pitch tangent-space velocity over dt and
// normalizes against the instance bounds. The velocity's X component is the
// yaw rate and Y the pitch rate, in radians per second.
func (pc PitchYawClamped) Advance(dt time.Duration, velocity Vec2) PitchYawClamped {
	pc.Y += velocity.X * dt.Seconds()
	pc.P += velocity.Y * dt.Seconds()
	return pc.Normalize()
}

// DeltaTo returns the component-wise displacement to target as a tangent
// vector: X is the yaw delta, Y the pitch delta.
func (pc PitchYawClamped) DeltaTo(target PitchYawClamped) Vec2 {
	d := target.Sub(pc)
	return V2(d.Y, d.P)
}
