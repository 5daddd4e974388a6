package motion

import "time"

// TickInterpolator advances an owned current value toward a target once per
// simulation tick. Implementations are single-owner state machines: Tick and
// SetTarget mutate, Get is side-effect free.
type TickInterpolator[T any] interface {
	// Tick advances the current value by the elapsed duration.
	Tick(dt time.Duration)
	// SetTarget replaces the target value.
	SetTarget(target T)
	// Get returns the current value.
	Get() T
}
