package motion

// Convenience constructors for the common stepper configurations. The
// generic constructors cover every supported type; these save the explicit
// type arguments at typical call sites.

// NewScalarStepper returns a linear stepper over a plain float64.
func NewScalarStepper(value, speed float64) *LinearStepper[Scalar] {
	return NewLinearStepper(Scalar(value), speed)
}

// NewAimStepper returns a linear stepper over a wrapping pitch-yaw
// orientation, for chasing look directions across the yaw seam.
func NewAimStepper(value PitchYaw, radiansPerSecond float64) *LinearStepper[PitchYaw] {
	return NewLinearStepper(value, radiansPerSecond)
}

// NewScalarSpring returns a spring stepper over a plain float64.
func NewScalarSpring(value, spring, damping float64) *SpringStepper[Scalar, Scalar] {
	return NewSpringStepper[Scalar, Scalar](Scalar(value), spring, damping)
}

// NewVec2Spring returns a spring stepper over a 2D vector.
func NewVec2Spring(value Vec2, spring, damping float64) *SpringStepper[Vec2, Vec2] {
	return NewSpringStepper[Vec2, Vec2](value, spring, damping)
}

// NewVec3Spring returns a spring stepper over a 3D vector.
func NewVec3Spring(value Vec3, spring, damping float64) *SpringStepper[Vec3, Vec3] {
	return NewSpringStepper[Vec3, Vec3](value, spring, damping)
}

// NewPitchYawSpring returns a spring stepper over a clamped pitch-yaw
// orientation, with its velocity in the unwrapped yaw/pitch tangent space.
func NewPitchYawSpring(value PitchYawClamped, spring, damping float64) *SpringStepper[PitchYawClamped, Vec2] {
	return NewSpringStepper[PitchYawClamped, Vec2](value, spring, damping)
}

// NewCriticallyDampedScalarSpring returns a scalar spring with damping
// derived from CriticalDampCoeff, converging without oscillation.
func NewCriticallyDampedScalarSpring(value, spring float64) *SpringStepper[Scalar, Scalar] {
	return NewScalarSpring(value, spring, CriticalDampCoeff(spring))
}

// NewCriticallyDampedPitchYawSpring returns a clamped pitch-yaw spring with
// damping derived from CriticalDampCoeff, converging without oscillation.
func NewCriticallyDampedPitchYawSpring(value PitchYawClamped, spring float64) *SpringStepper[PitchYawClamped, Vec2] {
	return NewPitchYawSpring(value, spring, CriticalDampCoeff(spring))
}
