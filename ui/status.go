package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	StatusBackground = color.RGBA{16, 12, 24, 200}
	StatusText       = color.RGBA{200, 190, 230, 255}
	StatusError      = color.RGBA{255, 200, 50, 255}
)

// StatusBar is the header strip with the status line and the last error.
type StatusBar struct {
	Text   string
	Error  string
	Height float32
}

func (s *StatusBar) Set(text string)     { s.Text = text }
func (s *StatusBar) SetError(msg string) { s.Error = msg }
func (s *StatusBar) Clear()              { s.Error = "" }

func (s *StatusBar) Draw(screen *ebiten.Image, width int, getFace func() font.Face, drawText TextDrawer) {
	if s == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width), s.Height, StatusBackground, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, s.Text, 12, 10, StatusText)
	if s.Error != "" {
		drawText(screen, face, s.Error, 160, 10, StatusError)
	}
}
