package motion

import (
	"fmt"
	"sort"
)

// TimedPoint pairs a control value with the curve time at which it takes
// effect.
type TimedPoint[P Point[P]] struct {
	T     float64
	Value P
}

// TimedSegment pairs a segment with its start time.
type TimedSegment[P Point[P]] struct {
	T       float64
	Segment LinearSegment[P]
}

type timedSegment[P Point[P]] struct {
	start   float64
	segment LinearSegment[P]
}

// LinearParamCurve is a piecewise-linear curve over the normalized domain
// [0, 1]: an ordered sequence of segments, each anchored at its start time,
// with the last segment implicitly extending to t=1. Curves are built once
// and immutable afterwards; evaluation never fails.
type LinearParamCurve[P Point[P]] struct {
	segments []timedSegment[P]
}

// NewLinearCurve builds a curve from raw timed segments, which must be sorted
// ascending by start time. At least one segment is required; fewer panic.
func NewLinearCurve[P Point[P]](segments []TimedSegment[P]) LinearParamCurve[P] {
	if len(segments) < 1 {
		panic("motion: a linear curve requires at least 1 segment")
	}
	ts := make([]timedSegment[P], len(segments))
	for i, s := range segments {
		ts[i] = timedSegment[P]{start: s.T, segment: s.Segment}
	}
	return LinearParamCurve[P]{segments: ts}
}

// NewUniformLinearCurve spreads the control points evenly across [0, 1]. At
// least two points are required; fewer panic.
func NewUniformLinearCurve[P Point[P]](points ...P) LinearParamCurve[P] {
	if len(points) < 2 {
		panic(fmt.Sprintf("motion: a linear curve requires at least 2 points, got %d", len(points)))
	}
	segments := make([]timedSegment[P], 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		t := float64(i) / float64(len(points)-1)
		segments = append(segments, timedSegment[P]{
			start:   t,
			segment: NewLinearSegment(points[i], points[i+1]),
		})
	}
	return LinearParamCurve[P]{segments: segments}
}

// NewLinearCurvePoints builds a curve from explicit (time, value)
// breakpoints, sorted ascending by time. The first time need not be 0. The
// final breakpoint's time is discarded: its value only terminates the
// implicit last segment, which always extends to t=1. At least two
// breakpoints are required; fewer panic.
func NewLinearCurvePoints[P Point[P]](points []TimedPoint[P]) LinearParamCurve[P] {
	if len(points) < 2 {
		panic(fmt.Sprintf("motion: a linear curve requires at least 2 points, got %d", len(points)))
	}
	segments := make([]timedSegment[P], 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		segments = append(segments, timedSegment[P]{
			start:   points[i].T,
			segment: NewLinearSegment(points[i].Value, points[i+1].Value),
		})
	}
	return LinearParamCurve[P]{segments: segments}
}

func (c LinearParamCurve[P]) segmentLength(i int) float64 {
	if i == len(c.segments)-1 {
		return 1 - c.segments[i].start
	}
	return c.segments[i+1].start - c.segments[i].start
}

// Get evaluates the curve at t. t is clamped to [0, 1] before lookup, so
// drivers that slightly overshoot the domain never need defensive clamping.
func (c LinearParamCurve[P]) Get(t float64) P {
	if len(c.segments) == 0 {
		panic("motion: LinearParamCurve has no segments")
	}
	t = clamp01(t)

	// The segment with the greatest start <= t: search for the first start
	// beyond t and step back one, flooring at the first segment for times
	// before its start.
	idx := sort.Search(len(c.segments), func(i int) bool {
		return c.segments[i].start > t
	})
	if idx > 0 {
		idx--
	}

	percent := (t - c.segments[idx].start) / c.segmentLength(idx)
	return c.segments[idx].segment.At(percent)
}
