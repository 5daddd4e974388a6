package motion

import "time"

// Steppable is the capability the linear stepper requires of its value type:
// a bounded move toward a target. Scalar, Vec2, Vec3, Rotation, PitchYaw and
// PitchYawClamped all satisfy it, each with its own stepping law.
type Steppable[T any] interface {
	comparable
	// StepToward moves toward target by at most maxDelta, snapping onto the
	// target on overshoot.
	StepToward(target T, maxDelta float64) T
}

// normalizer is an optional upgrade for value types with a canonical form,
// applied to incoming targets. Only the angular types implement it.
type normalizer[T any] interface {
	Normalize() T
}

// LinearStepper moves a current value toward a target at a bounded rate.
// Speed is in value units per second, or radians per second for angular
// types. For the pitch-yaw types the budget applies to each axis
// independently, not to the combined angular distance.
type LinearStepper[T Steppable[T]] struct {
	Current T
	Target  T
	Speed   float64
}

var (
	_ TickInterpolator[Scalar]          = (*LinearStepper[Scalar])(nil)
	_ TickInterpolator[Vec3]            = (*LinearStepper[Vec3])(nil)
	_ TickInterpolator[Rotation]        = (*LinearStepper[Rotation])(nil)
	_ TickInterpolator[PitchYaw]        = (*LinearStepper[PitchYaw])(nil)
	_ TickInterpolator[PitchYawClamped] = (*LinearStepper[PitchYawClamped])(nil)
)

// NewLinearStepper returns a settled stepper holding value.
func NewLinearStepper[T Steppable[T]](value T, speed float64) *LinearStepper[T] {
	return &LinearStepper[T]{Current: value, Target: value, Speed: speed}
}

// Tick moves the current value toward the target by at most Speed·dt.
func (s *LinearStepper[T]) Tick(dt time.Duration) {
	s.Current = s.Current.StepToward(s.Target, s.Speed*dt.Seconds())
}

// SetTarget replaces the target. Values with a canonical form (the angular
// types) are normalized on assignment.
func (s *LinearStepper[T]) SetTarget(target T) {
	if n, ok := any(target).(normalizer[T]); ok {
		target = n.Normalize()
	}
	s.Target = target
}

// Get returns the current value.
func (s *LinearStepper[T]) Get() T { return s.Current }

// Settled reports whether the current value has reached the target.
func (s *LinearStepper[T]) Settled() bool { return s.Current == s.Target }
