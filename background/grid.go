package background

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawGrid strokes the snap lattice over the stage rectangle, starting at
// the stage's top-left corner.
func DrawGrid(screen *ebiten.Image, x, y, w, h, cell float64, clr color.Color) {
	if cell <= 0 {
		return
	}
	for gx := x; gx <= x+w; gx += cell {
		vector.StrokeLine(screen, float32(gx), float32(y), float32(gx), float32(y+h), 1, clr, false)
	}
	for gy := y; gy <= y+h; gy += cell {
		vector.StrokeLine(screen, float32(x), float32(gy), float32(x+w), float32(gy), 1, clr, false)
	}
}
