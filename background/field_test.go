package background

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	assert.Equal(t, MinParticles, Count(100, 100, 0))
	assert.Equal(t, 73, Count(1024, 1000, DefaultDensity))
	assert.Equal(t, 146, Count(1024, 1000, 7000))
}

func TestNewFieldRanges(t *testing.T) {
	f := NewField(800, 600, DefaultDensity, rand.New(rand.NewPCG(1, 2)))
	assert.Len(t, f.Particles(), Count(800, 600, DefaultDensity))
	for _, p := range f.Particles() {
		assert.True(t, p.X >= 0 && p.X <= 800)
		assert.True(t, p.Y >= 0 && p.Y <= 600)
		assert.True(t, p.R >= 0.6 && p.R <= 2.2)
		assert.True(t, p.VX >= -0.1 && p.VX <= 0.1)
		assert.True(t, p.A >= 0.06 && p.A <= 0.2)
	}
}

func TestStepWraps(t *testing.T) {
	f := &Field{w: 100, h: 50, particles: []Particle{
		{X: -9.95, Y: 10, VX: -0.1},
		{X: 110, Y: 10, VX: 0.1},
		{X: 10, Y: -10, VY: -0.1},
		{X: 10, Y: 59.95, VY: 0.1},
	}}
	f.Step()
	ps := f.Particles()
	assert.Equal(t, 110.0, ps[0].X)
	assert.Equal(t, -WrapMargin, ps[1].X)
	assert.Equal(t, 60.0, ps[2].Y)
	assert.Equal(t, -WrapMargin, ps[3].Y)
}

func TestResizeKeepsPopulation(t *testing.T) {
	f := NewField(800, 600, DefaultDensity, rand.New(rand.NewPCG(3, 4)))
	n := len(f.Particles())
	f.Resize(200, 100)
	w, h := f.Size()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)
	assert.Len(t, f.Particles(), n)
}
