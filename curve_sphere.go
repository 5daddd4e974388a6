package motion

import "math"

// NewCircleOnSphereCurve linearizes a circular path over the unit sphere, in
// the plane orthogonal to normal. offsetAlongNormal in [0, 1] raises the
// plane toward the pole (shrinking the circle's radius to match the sphere's
// surface), offsetT rotates the traversal phase, and nPoints controls the
// linearization density. Useful for sky-dome paths such as a sun arc sampled
// at many points.
func NewCircleOnSphereCurve(normal Vec3, offsetAlongNormal, offsetT float64, nPoints int) LinearParamCurve[Vec3] {
	circleRadius := math.Cos(offsetAlongNormal * math.Pi / 2)

	horizontal := normal
	horizontal.Y = 0
	horizontal = horizontal.UnitOrZero()

	startT := 0.0
	if horizontal.X != 0 || horizontal.Z != 0 {
		startT = math.Atan2(horizontal.Z, horizontal.X) / (2 * math.Pi)
	}

	arc := RotationBetween(V3(0, 1, 0), normal)
	translation := normal.Scale(offsetAlongNormal)

	points := make([]Vec3, 0, nPoints)
	for i := 0; i < nPoints; i++ {
		ti := float64(i) / float64(nPoints-1)
		t := startT + offsetT + ti
		for t > 1 {
			t--
		}
		p := circlePoint(t).Scale(circleRadius)
		points = append(points, arc.Rotate(p).Add(translation))
	}
	return NewUniformLinearCurve(points...)
}

// circlePoint samples the unit circle in the XZ plane at normalized angle t.
func circlePoint(t float64) Vec3 {
	t *= 2 * math.Pi
	return V3(math.Cos(t), 0, math.Sin(t))
}
