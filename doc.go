// Package motion provides motion and interpolation primitives for real-time
// applications: parametric curves over a normalized time parameter,
// wrap- and clamp-aware angular coordinates, and tick-driven steppers that
// advance a current value toward a target at a bounded rate or under a
// spring-damper law.
//
// The package knows nothing about rendering, input, or scene graphs. A driver
// owns the stepper and curve instances, calls [TickInterpolator.Tick] once per
// simulation tick with the elapsed duration, and reads the current value back
// with [TickInterpolator.Get]. Curves are built once and evaluated many times
// with [Curve.Get].
//
// # Features
//
//   - Generic piecewise-linear and constant parametric curves over any type
//     with vector-space arithmetic, with O(log n) segment lookup
//   - [PitchYaw] and [PitchYawClamped] angular coordinates: the former wraps
//     yaw across the ±π boundary and steps along the shortest arc, the latter
//     hard-clamps both axes to per-instance bounds
//   - [LinearStepper]: constant-rate stepping with exact snap on overshoot
//   - [SpringStepper]: critically-dampable spring-damper stepping with a
//     per-type tangent space for wrapped/clamped values
//   - Vector and quaternion math backed by gonum's spatial/r2, spatial/r3 and
//     num/quat packages
//   - YAML/JSON curve and stepper definitions via [LoadYAML] and [LoadJSON]
//
// # Quick Start
//
// A curve fading a scalar from 1 to 0, and a stepper chasing a moving yaw:
//
//	fade := motion.LinearUniform(motion.Scalar(1), motion.Scalar(0))
//	_ = fade.Get(0.5) // 0.5
//
//	aim := motion.NewLinearStepper(motion.NewPitchYaw(0, 0), 2.0) // 2 rad/s
//	aim.SetTarget(motion.NewPitchYaw(math.Pi-0.1, 0.2))
//	for range 60 {
//	    aim.Tick(16 * time.Millisecond)
//	}
//	dir := aim.Get().ToUnitVec()
//
// # Value Types
//
// Curves and steppers are generic over small method-shaped capabilities
// ([Point], [Steppable], [Derivable]) rather than concrete types. [Scalar],
// [Vec2], [Vec3], [ColorPoint], [Rotation], [PitchYaw] and [PitchYawClamped]
// all plug in; gonum's r2.Vec and r3.Vec satisfy [Point] directly, and [Vec2]
// and [Vec3] convert to and from them with a plain type conversion.
//
// # Steppers
//
// [LinearStepper] settles: once the remaining delta fits in a single tick's
// budget it snaps exactly onto the target. [SpringStepper] integrates a
// damped harmonic oscillator with explicit Euler steps and only converges
// asymptotically; use [CriticalDampCoeff] to derive the damping that reaches
// the target fastest without oscillating. The integrator does not sub-step,
// so keep dt small relative to 1/√spring or the oscillator diverges.
//
// # Thread Safety
//
// Instances are single-owner. No operation blocks or synchronizes; Tick and
// SetTarget mutate the receiver and must not race with other calls on the
// same instance.
package motion
