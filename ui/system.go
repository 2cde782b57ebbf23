// Package ui draws the header strip: status text and the action buttons.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

const (
	ButtonHeight  = 28
	ButtonMargin  = 10
	ButtonPadding = 8
	HeaderHeight  = 48
)

// TextDrawer draws s with its top-left at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      TextDrawer
	Status        *StatusBar

	touchBuf []ebiten.TouchID
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText TextDrawer) *UISystem {
	return &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Status:        &StatusBar{Height: HeaderHeight},
	}
}

// AddButton appends a button. Buttons line up from the top-right corner
// leftwards in the order they were added.
func (ui *UISystem) AddButton(label, shortcut string, width float32, onClick func()) *Button {
	b := &Button{Label: label, Shortcut: shortcut, W: width, H: ButtonHeight, OnClick: onClick}
	ui.buttons = append(ui.buttons, b)
	ui.updateButtonPositions()
	return b
}

func (ui *UISystem) Buttons() []*Button { return ui.buttons }

func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w) - ButtonMargin
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = (HeaderHeight - ButtonHeight) / 2
		x -= ButtonPadding
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Hover marks the button under (mx, my) as hovered and clears the rest.
func (ui *UISystem) Hover(mx, my int) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.hovered = b.IsMouseOver(mx, my)
	}
}

// Click fires the button under (mx, my), if any.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	ui.Hover(ebiten.CursorPosition())
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
	ui.touchBuf = inpututil.AppendJustPressedTouchIDs(ui.touchBuf[:0])
	for _, id := range ui.touchBuf {
		x, y := ebiten.TouchPosition(id)
		if ui.Click(x, y) {
			break
		}
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	w, _ := ui.getScreenSize()
	ui.Status.Draw(screen, w, ui.getFontFace, ui.drawText)
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
}
