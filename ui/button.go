package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	ButtonColor  = color.RGBA{60, 44, 90, 210}
	ButtonHover  = color.RGBA{88, 62, 132, 230}
	ButtonBorder = color.RGBA{177, 108, 255, 120}
)

// Button is a header action. Shortcut, when set, is shown after the label.
type Button struct {
	Label    string
	Shortcut string
	X, Y     float32
	W, H     float32
	OnClick  func()

	hovered bool
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

func (b *Button) Hovered() bool { return b.hovered }

func (b *Button) caption() string {
	if b.Shortcut == "" {
		return b.Label
	}
	return b.Label + " [" + b.Shortcut + "]"
}

func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText TextDrawer) {
	fill := ButtonColor
	if b.hovered {
		fill = ButtonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, fill, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, ButtonBorder, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	label := b.caption()
	tw := font.MeasureString(face, label).Ceil()
	x := int(b.X) + (int(b.W)-tw)/2
	drawText(screen, face, label, x, int(b.Y)+8, color.White)
}
