package motion

// Curve is a parametric curve over the normalized domain [0, 1].
type Curve[P Point[P]] interface {
	// Get evaluates the curve at t. Arguments outside [0, 1] are clamped to
	// the nearest domain boundary.
	Get(t float64) P
}

type curveKind uint8

const (
	curveLinear curveKind = iota + 1
	curveConstant
)

// ParamCurve is a closed variant over the concrete curve kinds, so that
// storing heterogeneous curves does not need an interface value. The zero
// value is unusable; build one with Linear, LinearUniform or Constant.
type ParamCurve[P Point[P]] struct {
	kind     curveKind
	linear   LinearParamCurve[P]
	constant ConstantParamCurve[P]
}

// LinearUniform wraps a uniformly spaced piecewise-linear curve over the
// given control points. Fewer than two points panic.
func LinearUniform[P Point[P]](points ...P) ParamCurve[P] {
	return ParamCurve[P]{kind: curveLinear, linear: NewUniformLinearCurve(points...)}
}

// Linear wraps a piecewise-linear curve over explicit (time, value)
// breakpoints. Fewer than two breakpoints panic.
func Linear[P Point[P]](points []TimedPoint[P]) ParamCurve[P] {
	return ParamCurve[P]{kind: curveLinear, linear: NewLinearCurvePoints(points)}
}

// LinearOf wraps an already-built linear curve.
func LinearOf[P Point[P]](c LinearParamCurve[P]) ParamCurve[P] {
	return ParamCurve[P]{kind: curveLinear, linear: c}
}

// Constant wraps a constant curve.
func Constant[P Point[P]](val P) ParamCurve[P] {
	return ParamCurve[P]{kind: curveConstant, constant: NewConstantCurve(val)}
}

// Get evaluates the wrapped curve at t.
func (c ParamCurve[P]) Get(t float64) P {
	switch c.kind {
	case curveLinear:
		return c.linear.Get(t)
	case curveConstant:
		return c.constant.Get(t)
	default:
		panic("motion: ParamCurve is uninitialized")
	}
}

// Gradient is a color-valued parametric curve.
type Gradient = ParamCurve[ColorPoint]
