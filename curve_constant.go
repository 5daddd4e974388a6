package motion

// ConstantParamCurve is a curve that evaluates to the same value everywhere.
type ConstantParamCurve[P Point[P]] struct {
	val P
}

// NewConstantCurve returns the curve that always yields val.
func NewConstantCurve[P Point[P]](val P) ConstantParamCurve[P] {
	return ConstantParamCurve[P]{val: val}
}

// Get returns the constant value; t is ignored.
func (c ConstantParamCurve[P]) Get(_ float64) P { return c.val }
