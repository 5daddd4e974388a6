package motion

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 is a 2D vector backed by gonum's r2.Vec. The defined type carries the
// method set steppers need; converting to and from r2.Vec is a plain type
// conversion.
type Vec2 r2.Vec

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2(r2.Add(r2.Vec(v), r2.Vec(o))) }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2(r2.Sub(r2.Vec(v), r2.Vec(o))) }

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2(r2.Scale(f, r2.Vec(v))) }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return r2.Norm(r2.Vec(v)) }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Norm() }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return r2.Dot(r2.Vec(v), r2.Vec(o)) }

// Unit returns v scaled to unit length. The zero vector yields NaNs; use
// UnitOrZero when the input may be zero.
func (v Vec2) Unit() Vec2 { return Vec2(r2.Unit(r2.Vec(v))) }

// UnitOrZero is Unit, except that the zero vector maps to itself.
func (v Vec2) UnitOrZero() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Vec2{}
	}
	return v.Scale(1 / n)
}

// StepToward moves toward target by at most maxDelta of Euclidean distance
// along the straight line to it, snapping onto the target when the remaining
// distance is within the budget.
func (v Vec2) StepToward(target Vec2, maxDelta float64) Vec2 {
	delta := target.Sub(v)
	dist := delta.Norm()
	switch {
	case dist < maxDelta:
		return target
	case dist > 0:
		return v.Add(delta.Unit().Scale(maxDelta))
	default:
		return v
	}
}

// Advance integrates a velocity over dt.
func (v Vec2) Advance(dt time.Duration, velocity Vec2) Vec2 {
	return v.Add(velocity.Scale(dt.Seconds()))
}

// DeltaTo returns the displacement to target.
func (v Vec2) DeltaTo(target Vec2) Vec2 { return target.Sub(v) }

// Vec3 is a 3D vector backed by gonum's r3.Vec. The defined type carries the
// method set steppers need; converting to and from r3.Vec is a plain type
// conversion.
type Vec3 r3.Vec

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3(r3.Add(r3.Vec(v), r3.Vec(o))) }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(r3.Sub(r3.Vec(v), r3.Vec(o))) }

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 { return Vec3(r3.Scale(f, r3.Vec(v))) }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return r3.Norm(r3.Vec(v)) }

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Norm() }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return r3.Dot(r3.Vec(v), r3.Vec(o)) }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 { return Vec3(r3.Cross(r3.Vec(v), r3.Vec(o))) }

// Unit returns v scaled to unit length. The zero vector yields NaNs; use
// UnitOrZero when the input may be zero.
func (v Vec3) Unit() Vec3 { return Vec3(r3.Unit(r3.Vec(v))) }

// UnitOrZero is Unit, except that the zero vector maps to itself.
func (v Vec3) UnitOrZero() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Scale(1 / n)
}

// StepToward moves toward target by at most maxDelta of Euclidean distance
// along the straight line to it, snapping onto the target when the remaining
// distance is within the budget.
func (v Vec3) StepToward(target Vec3, maxDelta float64) Vec3 {
	delta := target.Sub(v)
	dist := delta.Norm()
	switch {
	case dist < maxDelta:
		return target
	case dist > 0:
		return v.Add(delta.Unit().Scale(maxDelta))
	default:
		return v
	}
}

// Advance integrates a velocity over dt.
func (v Vec3) Advance(dt time.Duration, velocity Vec3) Vec3 {
	return v.Add(velocity.Scale(dt.Seconds()))
}

// DeltaTo returns the displacement to target.
func (v Vec3) DeltaTo(target Vec3) Vec3 { return target.Sub(v) }
