package motion

import (
	"math"
	"time"
)

// Derivative is the capability required of a tangent-space velocity value.
type Derivative[D any] interface {
	Add(D) D
	Scale(float64) D
}

// Derivable binds a value type to its derivative (tangent) space and knows
// how to integrate a velocity over a duration. For flat types the derivative
// space is the type itself; PitchYawClamped integrates in an unwrapped
// yaw/pitch Vec2 space and renormalizes against its own bounds.
type Derivable[T, D any] interface {
	comparable
	// Advance returns the value moved along velocity over dt.
	Advance(dt time.Duration, velocity D) T
	// DeltaTo returns the displacement to target in the derivative space.
	DeltaTo(target T) D
}

// SpringStepper drives a value toward its target as a damped harmonic
// oscillator of mass SpringMass, integrated with explicit first-order Euler
// steps. It has no settled state: the value approaches the target
// asymptotically. The integrator does not sub-step, so callers must keep dt
// small relative to 1/√Spring or the oscillator diverges; this is a deliberate
// simplicity/performance trade-off.
type SpringStepper[T Derivable[T, D], D Derivative[D]] struct {
	Current  T
	Target   T
	Velocity D
	Spring   float64
	Damping  float64
}

var (
	_ TickInterpolator[Scalar]          = (*SpringStepper[Scalar, Scalar])(nil)
	_ TickInterpolator[Vec2]            = (*SpringStepper[Vec2, Vec2])(nil)
	_ TickInterpolator[Vec3]            = (*SpringStepper[Vec3, Vec3])(nil)
	_ TickInterpolator[PitchYawClamped] = (*SpringStepper[PitchYawClamped, Vec2])(nil)
)

// NewSpringStepper returns a spring at rest holding value.
func NewSpringStepper[T Derivable[T, D], D Derivative[D]](value T, spring, damping float64) *SpringStepper[T, D] {
	return &SpringStepper[T, D]{
		Current: value,
		Target:  value,
		Spring:  spring,
		Damping: damping,
	}
}

// NewSpringStepperVelocity returns a spring holding value with an initial
// velocity.
func NewSpringStepperVelocity[T Derivable[T, D], D Derivative[D]](value T, velocity D, spring, damping float64) *SpringStepper[T, D] {
	s := NewSpringStepper[T, D](value, spring, damping)
	s.Velocity = velocity
	return s
}

// Tick integrates one Euler step: the velocity accumulates the damping and
// spring accelerations, then the value advances along the new velocity.
func (s *SpringStepper[T, D]) Tick(dt time.Duration) {
	dampingForce := s.Velocity.Scale(-s.Damping)
	springForce := s.Current.DeltaTo(s.Target).Scale(s.Spring)
	s.Velocity = s.Velocity.Add(dampingForce.Add(springForce).Scale(dt.Seconds() / SpringMass))
	s.Current = s.Current.Advance(dt, s.Velocity)
}

// SetTarget replaces the target value.
func (s *SpringStepper[T, D]) SetTarget(target T) { s.Target = target }

// Get returns the current value.
func (s *SpringStepper[T, D]) Get() T { return s.Current }

// CriticalDampCoeff returns the damping coefficient at which a spring-damper
// system with the given spring constant and the shared SpringMass returns to
// rest fastest without oscillating. Callers typically derive Damping from
// this rather than choosing it independently.
func CriticalDampCoeff(springConstant float64) float64 {
	return 2 * math.Sqrt(springConstant*SpringMass)
}
