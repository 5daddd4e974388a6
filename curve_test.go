package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpelkonen/go-motion/internal/testutil"
)

const curveTolerance = 1e-9

func TestUniformLinearCurveEndpoints(t *testing.T) {
	c := NewUniformLinearCurve[Scalar](0, 1)
	assert.Equal(t, Scalar(0), c.Get(0))
	assert.Equal(t, Scalar(1), c.Get(1))
	assert.Equal(t, Scalar(0.5), c.Get(0.5))
}

func TestUniformLinearCurveClampsDomain(t *testing.T) {
	c := NewUniformLinearCurve[Scalar](0, 1)
	assert.Equal(t, Scalar(0), c.Get(-0.5))
	assert.Equal(t, Scalar(1), c.Get(2))
}

func TestUniformLinearCurveMultiSegment(t *testing.T) {
	c := NewUniformLinearCurve[Scalar](0, 1, 0)
	assert.InDelta(t, 0.5, float64(c.Get(0.25)), curveTolerance)
	assert.InDelta(t, 1.0, float64(c.Get(0.5)), curveTolerance)
	assert.InDelta(t, 0.5, float64(c.Get(0.75)), curveTolerance)
	assert.InDelta(t, 0.0, float64(c.Get(1)), curveTolerance)
}

func TestUniformLinearCurveSampled(t *testing.T) {
	c := NewUniformLinearCurve[Scalar](0, 1, 0)
	want := []float64{0, 0.4, 0.8, 0.8, 0.4, 0}
	got := make([]float64, len(want))
	for i := range got {
		got[i] = float64(c.Get(float64(i) / 5))
	}
	testutil.AssertInDeltaSlice(t, want, got, curveTolerance)
}

func TestUniformLinearCurveContinuity(t *testing.T) {
	c := NewUniformLinearCurve[Scalar](0, 3, -1, 2)
	for _, breakpoint := range []float64{1.0 / 3, 2.0 / 3} {
		left := float64(c.Get(breakpoint - 1e-9))
		right := float64(c.Get(breakpoint + 1e-9))
		assert.InDelta(t, left, right, 1e-6, "discontinuity at t=%v", breakpoint)
	}
}

func TestLinearCurveTimedBreakpoints(t *testing.T) {
	c := NewLinearCurvePoints([]TimedPoint[Scalar]{
		{T: 0, Value: 0},
		{T: 0.25, Value: 1},
		{T: 1, Value: 0},
	})
	assert.InDelta(t, 0.5, float64(c.Get(0.125)), curveTolerance)
	assert.InDelta(t, 1.0, float64(c.Get(0.25)), curveTolerance)
	assert.InDelta(t, 0.5, float64(c.Get(0.625)), curveTolerance)
	assert.InDelta(t, 0.0, float64(c.Get(1)), curveTolerance)
}

func TestLinearCurveFinalTimeIgnored(t *testing.T) {
	// The last breakpoint's time only terminates the implicit final
	// segment, which runs to t=1 regardless.
	c := NewLinearCurvePoints([]TimedPoint[Scalar]{
		{T: 0, Value: 0},
		{T: 0.7, Value: 1},
	})
	assert.InDelta(t, 0.7, float64(c.Get(0.7)), curveTolerance)
	assert.InDelta(t, 1.0, float64(c.Get(1)), curveTolerance)
}

func TestLinearCurveFromSegments(t *testing.T) {
	c := NewLinearCurve([]TimedSegment[Scalar]{
		{T: 0, Segment: NewLinearSegment[Scalar](0, 2)},
		{T: 0.5, Segment: NewLinearSegment[Scalar](2, 4)},
	})
	assert.InDelta(t, 1.0, float64(c.Get(0.25)), curveTolerance)
	assert.InDelta(t, 3.0, float64(c.Get(0.75)), curveTolerance)
	assert.InDelta(t, 4.0, float64(c.Get(1)), curveTolerance)
}

func TestLinearCurvePanics(t *testing.T) {
	require.Panics(t, func() { NewLinearCurve[Scalar](nil) })
	require.Panics(t, func() { NewUniformLinearCurve[Scalar](1) })
	require.Panics(t, func() { NewLinearCurvePoints([]TimedPoint[Scalar]{{T: 0, Value: 1}}) })
}

func TestConstantCurve(t *testing.T) {
	c := NewConstantCurve(V3(1, 2, 3))
	assert.Equal(t, V3(1, 2, 3), c.Get(0))
	assert.Equal(t, V3(1, 2, 3), c.Get(0.5))
	assert.Equal(t, V3(1, 2, 3), c.Get(1))
}

func TestParamCurveVariants(t *testing.T) {
	linear := LinearUniform[Scalar](0, 1)
	assert.Equal(t, Scalar(0.5), linear.Get(0.5))

	timed := Linear([]TimedPoint[Scalar]{{T: 0, Value: 2}, {T: 1, Value: 4}})
	assert.InDelta(t, 3.0, float64(timed.Get(0.5)), curveTolerance)

	wrapped := LinearOf(NewUniformLinearCurve[Scalar](1, 3))
	assert.InDelta(t, 2.0, float64(wrapped.Get(0.5)), curveTolerance)

	constant := Constant(Scalar(7))
	assert.Equal(t, Scalar(7), constant.Get(0.3))
}

func TestParamCurveZeroValuePanics(t *testing.T) {
	var c ParamCurve[Scalar]
	require.Panics(t, func() { c.Get(0.5) })
}

func TestGradient(t *testing.T) {
	g := LinearUniform(
		ColorPoint{R: 1, A: 1},
		ColorPoint{B: 1, A: 1},
	)
	mid := g.Get(0.5)
	assert.InDelta(t, 0.5, mid.R, curveTolerance)
	assert.InDelta(t, 0.0, mid.G, curveTolerance)
	assert.InDelta(t, 0.5, mid.B, curveTolerance)
	assert.InDelta(t, 1.0, mid.A, curveTolerance)
}

func TestCircleOnSphereCurveEquator(t *testing.T) {
	c := NewCircleOnSphereCurve(V3(0, 1, 0), 0, 0, 9)

	start := c.Get(0)
	assertVecInDelta(t, V3(1, 0, 0), start, curveTolerance)

	// Closed loop: the last point returns to the first
	end := c.Get(1)
	assertVecInDelta(t, start, end, curveTolerance)

	// Breakpoints sit on the unit circle in the XZ plane
	for _, tc := range []struct {
		t    float64
		want Vec3
	}{
		{0.25, V3(0, 0, 1)},
		{0.5, V3(-1, 0, 0)},
		{0.75, V3(0, 0, -1)},
	} {
		assertVecInDelta(t, tc.want, c.Get(tc.t), curveTolerance)
	}
}

func TestCircleOnSphereCurvePhaseOffset(t *testing.T) {
	c := NewCircleOnSphereCurve(V3(0, 1, 0), 0, 0.25, 9)
	assertVecInDelta(t, V3(0, 0, 1), c.Get(0), curveTolerance)
}

func TestCircleOnSphereCurvePole(t *testing.T) {
	// Fully offset along the normal: the circle degenerates to the pole.
	c := NewCircleOnSphereCurve(V3(0, 1, 0), 1, 0, 9)
	got := c.Get(0.3)
	assertVecInDelta(t, V3(0, 1, 0), got, 1e-9)
}

func TestCircleOnSphereCurveTiltedRadius(t *testing.T) {
	c := NewCircleOnSphereCurve(V3(1, 1, 0).Unit(), 0, 0, 33)
	for _, ti := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := c.Get(ti)
		assert.InDelta(t, 1.0, p.Norm(), 1e-9, "breakpoint at t=%v off the unit sphere", ti)
	}
}

func TestSegmentExtrapolates(t *testing.T) {
	s := NewLinearSegment[Scalar](0, 1)
	assert.Equal(t, Scalar(2), s.At(2))
	assert.Equal(t, Scalar(-1), s.At(-1))
	assert.InDelta(t, 0.25, float64(s.At(0.25)), curveTolerance)
}

func TestCirclePointQuadrants(t *testing.T) {
	assertVecInDelta(t, V3(1, 0, 0), circlePoint(0), curveTolerance)
	assertVecInDelta(t, V3(0, 0, 1), circlePoint(0.25), curveTolerance)
	assertVecInDelta(t, V3(-1, 0, 0), circlePoint(0.5), curveTolerance)
	assert.InDelta(t, 1.0, circlePoint(0.123).Norm(), curveTolerance)
}

func TestCircleOnSphereCurvePlane(t *testing.T) {
	// With no offset the circle lies in the plane orthogonal to the normal.
	normal := V3(0, 1, 1).Unit()
	c := NewCircleOnSphereCurve(normal, 0, 0, 33)
	for _, ti := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := c.Get(ti)
		assert.InDelta(t, 0.0, p.Dot(normal), 1e-9, "breakpoint at t=%v out of plane", ti)
	}
}
