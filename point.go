package motion

import (
	"math"
	"time"
)

// Point is the minimal algebraic capability curves and steppers require of a
// value type: addition, subtraction, scaling by a scalar, and value equality.
// The zero value of an implementing type must be the additive identity.
//
// The method set is kept deliberately small so that foreign types plug in
// unchanged; gonum's r2.Vec and r3.Vec satisfy it as-is.
type Point[P any] interface {
	comparable
	Add(P) P
	Sub(P) P
	Scale(float64) P
}

// Scalar adapts float64 to the Point capability.
type Scalar float64

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Scale returns s * f.
func (s Scalar) Scale(f float64) Scalar { return s * Scalar(f) }

// Float returns the scalar as a plain float64.
func (s Scalar) Float() float64 { return float64(s) }

// StepToward moves toward target by at most maxDelta, snapping onto the
// target when the remaining distance is within the budget.
func (s Scalar) StepToward(target Scalar, maxDelta float64) Scalar {
	delta := float64(target - s)
	if math.Abs(delta) > maxDelta {
		return s + Scalar(math.Copysign(maxDelta, delta))
	}
	return target
}

// Advance integrates a velocity over dt.
func (s Scalar) Advance(dt time.Duration, velocity Scalar) Scalar {
	return s + velocity.Scale(dt.Seconds())
}

// DeltaTo returns the displacement to target.
func (s Scalar) DeltaTo(target Scalar) Scalar { return target - s }

// Sum adds a sequence of points, starting from the zero value.
func Sum[P Point[P]](points []P) P {
	var total P
	for _, p := range points {
		total = total.Add(p)
	}
	return total
}

// Lerp blends linearly from a to b. t is not clamped: values outside [0, 1]
// extrapolate.
func Lerp[P Point[P]](a, b P, t float64) P {
	return a.Add(b.Sub(a).Scale(t))
}
