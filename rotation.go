package motion

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is a unit quaternion backed by gonum's r3.Rotation. The zero value
// is not a valid rotation; start from RotationIdentity or one of the
// constructors.
type Rotation r3.Rotation

// RotationIdentity returns the identity rotation.
func RotationIdentity() Rotation { return Rotation{Real: 1} }

// RotationX returns a rotation of angle radians about the +X axis.
func RotationX(angle float64) Rotation {
	return Rotation(r3.NewRotation(angle, r3.Vec{X: 1}))
}

// RotationY returns a rotation of angle radians about the +Y axis.
func RotationY(angle float64) Rotation {
	return Rotation(r3.NewRotation(angle, r3.Vec{Y: 1}))
}

// RotationZ returns a rotation of angle radians about the +Z axis.
func RotationZ(angle float64) Rotation {
	return Rotation(r3.NewRotation(angle, r3.Vec{Z: 1}))
}

// RotationAbout returns a rotation of angle radians about an arbitrary axis.
func RotationAbout(angle float64, axis Vec3) Rotation {
	return Rotation(r3.NewRotation(angle, r3.Vec(axis)))
}

// RotationBetween returns the minimal rotation taking the direction of from
// onto the direction of to. The inputs need not be unit length. Antiparallel
// directions rotate half a turn about an arbitrary orthogonal axis.
func RotationBetween(from, to Vec3) Rotation {
	f := from.UnitOrZero()
	t := to.UnitOrZero()
	d := clampF(f.Dot(t), -1, 1)
	switch {
	case f == (Vec3{}) || t == (Vec3{}):
		return RotationIdentity()
	case d >= 1:
		return RotationIdentity()
	case d <= -1:
		return RotationAbout(math.Pi, orthogonalTo(f))
	default:
		axis := f.Cross(t).Unit()
		return RotationAbout(math.Acos(d), axis)
	}
}

// orthogonalTo picks a unit vector orthogonal to v, crossing against the
// basis axis v is least aligned with.
func orthogonalTo(v Vec3) Vec3 {
	basis := V3(1, 0, 0)
	if math.Abs(v.X) > math.Abs(v.Y) {
		basis = V3(0, 1, 0)
	}
	return v.Cross(basis).Unit()
}

// Quat returns the rotation as a gonum quaternion.
func (r Rotation) Quat() quat.Number { return quat.Number(r) }

// Conj returns the conjugate, which for a unit quaternion is the inverse
// rotation.
func (r Rotation) Conj() Rotation {
	return Rotation(quat.Conj(quat.Number(r)))
}

// Mul composes rotations: the result applies o first, then r.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation(quat.Mul(quat.Number(r), quat.Number(o)))
}

// Rotate applies the rotation to a vector.
func (r Rotation) Rotate(v Vec3) Vec3 {
	return Vec3(r3.Rotation(r).Rotate(r3.Vec(v)))
}

// Dot returns the four-component dot product of r and o.
func (r Rotation) Dot(o Rotation) float64 {
	return r.Real*o.Real + r.Imag*o.Imag + r.Jmag*o.Jmag + r.Kmag*o.Kmag
}

// AngleBetween returns the angle in radians of the minimal rotation taking r
// onto o.
func (r Rotation) AngleBetween(o Rotation) float64 {
	d := clampF(math.Abs(r.Dot(o)), 0, 1)
	return 2 * math.Acos(d)
}

// Slerp spherically interpolates from r toward o along the shortest arc.
// t is not clamped. Nearly parallel rotations fall back to normalized linear
// interpolation.
func (r Rotation) Slerp(o Rotation, t float64) Rotation {
	a := quat.Number(r)
	b := quat.Number(o)

	d := r.Dot(o)
	if d < 0 {
		// Negated quaternion, same rotation: interpolate the short way.
		b = quat.Scale(-1, b)
		d = -d
	}

	if d > slerpDotThreshold {
		mixed := quat.Add(quat.Scale(1-t, a), quat.Scale(t, b))
		return Rotation(quat.Scale(1/quat.Abs(mixed), mixed))
	}

	theta := math.Acos(clampF(d, -1, 1))
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Rotation(quat.Add(quat.Scale(wa, a), quat.Scale(wb, b)))
}

// StepToward rotates toward target by at most maxAngle radians along the
// shortest rotational path, snapping onto the target when the remaining angle
// is within the budget.
func (r Rotation) StepToward(target Rotation, maxAngle float64) Rotation {
	angle := r.AngleBetween(target)
	switch {
	case angle < maxAngle:
		return target
	case angle > 0:
		return r.Slerp(target, maxAngle/angle)
	default:
		return r
	}
}
