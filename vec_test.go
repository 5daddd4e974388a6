package motion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	assert.Equal(t, V2(4, 6), V2(1, 2).Add(V2(3, 4)))
	assert.Equal(t, V2(-2, -2), V2(1, 2).Sub(V2(3, 4)))
	assert.Equal(t, V2(2, 4), V2(1, 2).Scale(2))
	assert.InDelta(t, 5.0, V2(3, 4).Norm(), 1e-12)
	assert.InDelta(t, 11.0, V2(1, 2).Dot(V2(3, 4)), 1e-12)
}

func TestVec2UnitOrZero(t *testing.T) {
	u := V2(3, 4).UnitOrZero()
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)
	assert.Equal(t, V2(0, 0), V2(0, 0).UnitOrZero())
}

func TestVec3Arithmetic(t *testing.T) {
	assert.Equal(t, V3(5, 7, 9), V3(1, 2, 3).Add(V3(4, 5, 6)))
	assert.Equal(t, V3(-3, -3, -3), V3(1, 2, 3).Sub(V3(4, 5, 6)))
	assert.Equal(t, V3(2, 4, 6), V3(1, 2, 3).Scale(2))
	assert.InDelta(t, math.Sqrt(14), V3(1, 2, 3).Norm(), 1e-12)
	assert.InDelta(t, 32.0, V3(1, 2, 3).Dot(V3(4, 5, 6)), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	assert.Equal(t, V3(0, 0, 1), V3(1, 0, 0).Cross(V3(0, 1, 0)))
	assert.Equal(t, V3(0, 0, -1), V3(0, 1, 0).Cross(V3(1, 0, 0)))
	assert.Equal(t, V3(0, 0, 0), V3(1, 2, 3).Cross(V3(1, 2, 3)))
}

func TestVec3Distance(t *testing.T) {
	assert.InDelta(t, 5.0, V3(0, 0, 0).Distance(V3(3, 0, 4)), 1e-12)
	assert.InDelta(t, 0.0, V3(1, 2, 3).Distance(V3(1, 2, 3)), 1e-12)
}

func TestVec3StepToward(t *testing.T) {
	// Moves along the straight line to the target
	got := V3(0, 0, 0).StepToward(V3(3, 0, 4), 1)
	assert.InDelta(t, 0.6, got.X, 1e-12)
	assert.InDelta(t, 0.0, got.Y, 1e-12)
	assert.InDelta(t, 0.8, got.Z, 1e-12)

	// Snaps onto the target when within budget
	assert.Equal(t, V3(3, 0, 4), V3(3, 0, 3.5).StepToward(V3(3, 0, 4), 1))

	// Already there: stays put
	assert.Equal(t, V3(1, 1, 1), V3(1, 1, 1).StepToward(V3(1, 1, 1), 0))
}

func TestVec3Advance(t *testing.T) {
	got := V3(1, 0, 0).Advance(250*time.Millisecond, V3(4, 8, 0))
	assert.InDelta(t, 2.0, got.X, 1e-12)
	assert.InDelta(t, 2.0, got.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Z, 1e-12)
}

func TestVec3DeltaTo(t *testing.T) {
	assert.Equal(t, V3(2, 2, 2), V3(1, 1, 1).DeltaTo(V3(3, 3, 3)))
}
