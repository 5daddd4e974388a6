package motion

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorPointOf(t *testing.T) {
	got := ColorPointOf(color.RGBA{R: 255, A: 255})
	assert.InDelta(t, 1, got.R, 1e-12)
	assert.InDelta(t, 0, got.G, 1e-12)
	assert.InDelta(t, 0, got.B, 1e-12)
	assert.InDelta(t, 1, got.A, 1e-12)

	got = ColorPointOf(color.Gray16{Y: 0x8000})
	assert.InDelta(t, 0.5, got.R, 1e-4)
	assert.InDelta(t, 1, got.A, 1e-12)
}

func TestColorPointArithmetic(t *testing.T) {
	a := RGBA(0.5, 0.25, 0, 1)
	b := RGBA(0.25, 0.25, 0.5, 0)

	sum := a.Add(b)
	assert.InDelta(t, 0.75, sum.R, 1e-12)
	assert.InDelta(t, 0.5, sum.G, 1e-12)
	assert.InDelta(t, 0.5, sum.B, 1e-12)
	assert.InDelta(t, 1, sum.A, 1e-12)

	diff := a.Sub(b)
	assert.InDelta(t, 0.25, diff.R, 1e-12)
	assert.InDelta(t, -0.5, diff.B, 1e-12)

	scaled := a.Scale(2)
	assert.InDelta(t, 1, scaled.R, 1e-12)
	assert.InDelta(t, 0.5, scaled.G, 1e-12)

	offset := a.AddScalar(0.1)
	assert.InDelta(t, 0.6, offset.R, 1e-12)
	assert.InDelta(t, 0.1, offset.B, 1e-12)
}

func TestColorPointColorClamps(t *testing.T) {
	c, ok := RGBA(1.5, -0.2, 0.5, 1).Color().(color.RGBA64)
	require.True(t, ok)
	assert.Equal(t, uint16(0xffff), c.R)
	assert.Equal(t, uint16(0), c.G)
	assert.InDelta(t, 0x8000, float64(c.B), 1)
	assert.Equal(t, uint16(0xffff), c.A)
}

func TestColorPointGradientOvershoot(t *testing.T) {
	// Channels may leave [0, 1] during blending; only Color clamps.
	g := LinearUniform(RGBA(0, 0, 0, 1), RGBA(2, 2, 2, 1))
	mid := g.Get(0.75)
	assert.InDelta(t, 1.5, mid.R, 1e-9)
}
