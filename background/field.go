// Package background renders the ambient particle field behind the board.
package background

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultDensity is screen area per particle in square pixels.
	DefaultDensity = 14000.0
	MinParticles   = 30
	// WrapMargin lets particles leave the screen before they reappear.
	WrapMargin = 10.0
)

type Particle struct {
	X, Y   float64
	R      float64
	VX, VY float64
	A      float64
}

// Field is the particle simulation. It advances one step per frame and is
// independent of any drag state.
type Field struct {
	w, h      float64
	particles []Particle
}

// Count returns the particle count for a w x h screen.
func Count(w, h int, density float64) int {
	if density <= 0 {
		density = DefaultDensity
	}
	n := int(math.Floor(float64(w) * float64(h) / density))
	return max(MinParticles, n)
}

func NewField(w, h int, density float64, rng *rand.Rand) *Field {
	f := &Field{w: float64(w), h: float64(h)}
	n := Count(w, h, density)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:  rng.Float64() * f.w,
			Y:  rng.Float64() * f.h,
			R:  0.6 + rng.Float64()*1.6,
			VX: (rng.Float64() - 0.5) * 0.2,
			VY: (rng.Float64() - 0.5) * 0.2,
			A:  0.06 + rng.Float64()*0.14,
		}
	}
	return f
}

// Resize changes the wrap bounds. The population is kept.
func (f *Field) Resize(w, h int) {
	f.w, f.h = float64(w), float64(h)
}

func (f *Field) Size() (w, h float64) { return f.w, f.h }

func (f *Field) Particles() []Particle { return f.particles }

// Step moves every particle by its velocity and wraps it around the edges.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < -WrapMargin {
			p.X = f.w + WrapMargin
		}
		if p.X > f.w+WrapMargin {
			p.X = -WrapMargin
		}
		if p.Y < -WrapMargin {
			p.Y = f.h + WrapMargin
		}
		if p.Y > f.h+WrapMargin {
			p.Y = -WrapMargin
		}
	}
}
