package motion

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Curve and stepper kinds accepted in configuration files.
const (
	CurveKindConstant      = "constant"
	CurveKindLinear        = "linear"
	CurveKindLinearUniform = "linear_uniform"

	StepperKindLinear = "linear"
	StepperKindSpring = "spring"
)

// Configuration errors. Malformed data reports one of these wrapped with
// positional context; programming errors still panic.
var (
	ErrUnknownKind   = errors.New("motion: unknown kind")
	ErrTooFewStops   = errors.New("motion: too few stops")
	ErrBadStopArity  = errors.New("motion: wrong number of components in stop")
	ErrUnsortedStops = errors.New("motion: stops are not sorted by time")
)

// CurveStop is one breakpoint of a configured curve. Value holds the point
// components: one for scalar curves, three for vectors, four for gradients.
type CurveStop struct {
	T     float64   `json:"t" yaml:"t"`
	Value []float64 `json:"value" yaml:"value"`
}

// CurveConfig describes a parametric curve in data form.
//
// Constant curves use a single stop and ignore its time. Linear curves use
// the stop times as breakpoints; linear_uniform ignores the times and spaces
// the stops evenly.
type CurveConfig struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Stops []CurveStop `json:"stops" yaml:"stops"`
}

func buildCurve[P Point[P]](c CurveConfig, arity int, from func([]float64) P) (ParamCurve[P], error) {
	var zero ParamCurve[P]

	for i, s := range c.Stops {
		if len(s.Value) != arity {
			return zero, fmt.Errorf("%w: stop %d has %d, want %d", ErrBadStopArity, i, len(s.Value), arity)
		}
	}

	switch c.Kind {
	case CurveKindConstant:
		if len(c.Stops) < 1 {
			return zero, fmt.Errorf("%w: constant curve needs 1 stop", ErrTooFewStops)
		}
		return Constant(from(c.Stops[0].Value)), nil

	case CurveKindLinear:
		if len(c.Stops) < 2 {
			return zero, fmt.Errorf("%w: linear curve needs at least 2 stops, got %d", ErrTooFewStops, len(c.Stops))
		}
		points := make([]TimedPoint[P], len(c.Stops))
		for i, s := range c.Stops {
			if i > 0 && s.T < c.Stops[i-1].T {
				return zero, fmt.Errorf("%w: stop %d at t=%v after t=%v", ErrUnsortedStops, i, s.T, c.Stops[i-1].T)
			}
			points[i] = TimedPoint[P]{T: s.T, Value: from(s.Value)}
		}
		return Linear(points), nil

	case CurveKindLinearUniform:
		if len(c.Stops) < 2 {
			return zero, fmt.Errorf("%w: linear_uniform curve needs at least 2 stops, got %d", ErrTooFewStops, len(c.Stops))
		}
		points := make([]P, len(c.Stops))
		for i, s := range c.Stops {
			points[i] = from(s.Value)
		}
		return LinearUniform(points...), nil

	default:
		return zero, fmt.Errorf("%w: curve kind %q", ErrUnknownKind, c.Kind)
	}
}

// BuildScalar constructs a scalar curve from the config.
func (c CurveConfig) BuildScalar() (ParamCurve[Scalar], error) {
	return buildCurve(c, 1, func(v []float64) Scalar { return Scalar(v[0]) })
}

// BuildVec3 constructs a 3D vector curve from the config.
func (c CurveConfig) BuildVec3() (ParamCurve[Vec3], error) {
	return buildCurve(c, 3, func(v []float64) Vec3 { return V3(v[0], v[1], v[2]) })
}

// BuildGradient constructs a color gradient from the config. Stop values are
// RGBA components in the 0..1 range.
func (c CurveConfig) BuildGradient() (Gradient, error) {
	return buildCurve(c, 4, func(v []float64) ColorPoint {
		return ColorPoint{R: v[0], G: v[1], B: v[2], A: v[3]}
	})
}

// StepperConfig describes a tick interpolator in data form.
//
// Linear steppers read Speed. Spring steppers read Spring and either Damping
// or, when CriticalDamping is set, derive the critical coefficient from the
// spring constant.
type StepperConfig struct {
	Kind            string  `json:"kind" yaml:"kind"`
	Speed           float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	Spring          float64 `json:"spring,omitempty" yaml:"spring,omitempty"`
	Damping         float64 `json:"damping,omitempty" yaml:"damping,omitempty"`
	CriticalDamping bool    `json:"critical_damping,omitempty" yaml:"critical_damping,omitempty"`
}

// BuildScalar constructs a scalar interpolator starting at value.
func (c StepperConfig) BuildScalar(value float64) (TickInterpolator[Scalar], error) {
	switch c.Kind {
	case StepperKindLinear:
		return NewScalarStepper(value, c.Speed), nil
	case StepperKindSpring:
		damping := c.Damping
		if c.CriticalDamping {
			damping = CriticalDampCoeff(c.Spring)
		}
		return NewScalarSpring(value, c.Spring, damping), nil
	default:
		return nil, fmt.Errorf("%w: stepper kind %q", ErrUnknownKind, c.Kind)
	}
}

// MotionConfig is the top-level configuration document: named curves and
// steppers to be built on demand.
type MotionConfig struct {
	Curves   map[string]CurveConfig   `json:"curves,omitempty" yaml:"curves,omitempty"`
	Steppers map[string]StepperConfig `json:"steppers,omitempty" yaml:"steppers,omitempty"`
}

// LoadYAML reads a MotionConfig document from r.
func LoadYAML(r io.Reader) (*MotionConfig, error) {
	var cfg MotionConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("motion: decode yaml config: %w", err)
	}
	return &cfg, nil
}

// LoadJSON reads a MotionConfig document from r.
func LoadJSON(r io.Reader) (*MotionConfig, error) {
	var cfg MotionConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("motion: decode json config: %w", err)
	}
	return &cfg, nil
}
