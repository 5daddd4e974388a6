package motion

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandValue produces randomized values of a fixed shape. The generators are
// the only non-deterministic inputs in this package; everything else is a
// pure value transformation.
type RandValue[T any] interface {
	Generate() T
}

var (
	_ RandValue[float64] = RandFloat{}
	_ RandValue[Vec3]    = RandVec3{}
)

// RandFloat draws uniformly from [Min, Max).
type RandFloat struct {
	Min float64
	Max float64
}

// ConstantRandFloat returns a generator that always yields value.
func ConstantRandFloat(value float64) RandFloat {
	return RandFloat{Min: value, Max: value}
}

// Generate returns a fresh draw.
func (r RandFloat) Generate() float64 {
	return distuv.Uniform{Min: r.Min, Max: r.Max}.Rand()
}

// RandVec3 draws vectors around Direction: the magnitude comes from
// Magnitude, and the direction is tilted off axis by up to Spread radians at
// a uniformly random roll.
type RandVec3 struct {
	Magnitude RandFloat
	Direction Vec3
	Spread    float64
}

// ConstantRandVec3 returns a generator that always yields value.
func ConstantRandVec3(value Vec3) RandVec3 {
	return RandVec3{
		Magnitude: ConstantRandFloat(value.Norm()),
		Direction: value.UnitOrZero(),
	}
}

// Generate returns a fresh draw.
func (r RandVec3) Generate() Vec3 {
	dir := r.Direction.UnitOrZero()
	if r.Spread > 0 {
		roll := distuv.Uniform{Max: 2 * math.Pi}.Rand()
		tilt := distuv.Uniform{Max: r.Spread}.Rand()

		local := RotationX(roll).Rotate(V3(math.Cos(tilt), 0, math.Sin(tilt)))
		dir = RotationBetween(V3(1, 0, 0), r.Direction).Rotate(local)
	}
	return dir.Scale(r.Magnitude.Generate())
}
