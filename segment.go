package motion

// LinearSegment is a straight-line blend between two points. It is a pure
// value, immutable after construction.
type LinearSegment[P Point[P]] struct {
	Start P
	End   P
}

// NewLinearSegment returns the segment from start to end.
func NewLinearSegment[P Point[P]](start, end P) LinearSegment[P] {
	return LinearSegment[P]{Start: start, End: end}
}

// At returns the blend at the given percent along the segment. The percent is
// not clamped: values outside [0, 1] extrapolate beyond the endpoints.
func (s LinearSegment[P]) At(percent float64) P {
	return Lerp(s.Start, s.End, percent)
}
