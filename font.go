package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads a TrueType font from path, falling back to basicfont.Face7x13.
func LoadUIFont(path string, logger *log.Logger) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("font not found, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		logger.Warn("font parse error, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 15, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Warn("font face error, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	return face
}

// lineHeight returns the face's line height and ascent in pixels.
func lineHeight(face font.Face) (height, ascent int) {
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	height = ascent + m.Descent.Ceil()
	if height <= 0 {
		return 16, 12
	}
	return height, ascent
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	// y is the top of the first line; text.Draw wants the baseline
	h, ascent := lineHeight(face)
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*h, clr)
	}
}
