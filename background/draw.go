package background

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dotRadius     = 8
	vignetteSteps = 64
	vignetteAlpha = 0.35
)

var ParticleColor = color.RGBA{177, 108, 255, 255}

// Renderer draws a Field. Its images are created on first Draw, inside the
// game loop.
type Renderer struct {
	dot      *ebiten.Image
	vignette *ebiten.Image
}

func (r *Renderer) init() {
	if r.dot != nil {
		return
	}
	r.dot = ebiten.NewImage(dotRadius*2, dotRadius*2)
	vector.DrawFilledCircle(r.dot, dotRadius, dotRadius, dotRadius, color.White, true)

	// premultiplied black, transparent at the top
	pix := make([]byte, 4*vignetteSteps)
	for i := 0; i < vignetteSteps; i++ {
		a := float64(i) / float64(vignetteSteps-1) * vignetteAlpha
		pix[4*i+3] = byte(a * 255)
	}
	r.vignette = ebiten.NewImage(1, vignetteSteps)
	r.vignette.WritePixels(pix)
}

func (r *Renderer) Draw(screen *ebiten.Image, f *Field) {
	r.init()
	w, h := f.Size()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h/vignetteSteps)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.vignette, op)

	for _, p := range f.Particles() {
		op := &ebiten.DrawImageOptions{}
		s := p.R / dotRadius
		op.GeoM.Translate(-dotRadius, -dotRadius)
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleWithColor(ParticleColor)
		op.ColorScale.ScaleAlpha(float32(p.A))
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(r.dot, op)
	}
}
