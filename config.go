package main

import (
	"image/color"
	"time"

	"mission-control/ui"
)

const (
	WindowTitle = "Refyned Mission Control"

	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800

	// --- Board ---
	HeaderHeight         = ui.HeaderHeight
	DefaultGridSize      = 120.0
	DefaultSnapThreshold = 60.0

	// --- Widgets ---
	WidgetWidth     = 220.0
	WidgetHeight    = 110.0
	WidgetPadding   = 12
	ShadowOffset    = 5.0
	BorderThickness = 2.0
	GlowThickness   = 6.0

	BounceLift     = 6.0
	BounceDuration = 140 * time.Millisecond

	// Default scatter, container-relative
	ScatterColumns       = 3
	ScatterLeft          = 40.0
	ScatterTop           = 80.0
	ScatterStepX         = 240.0
	ScatterStepY         = 140.0
	ScatterRightReserve  = 260.0
	ScatterBottomReserve = 160.0

	// --- List mode ---
	ListWidth      = 420.0
	ListCardHeight = 72.0
	ListGap        = 12.0
	ListPadding    = 16.0
	DraggingAlpha  = 0.4

	// --- Screenshot ---
	ScreenshotFile = "screenshot.png"
)

var (
	// --- Colors ---
	ColorBackground   = color.RGBA{11, 8, 18, 255}
	ColorGrid         = color.RGBA{177, 108, 255, 18}
	ColorShadow       = color.RGBA{0, 0, 0, 110}
	ColorWidget       = color.RGBA{28, 22, 42, 235}
	ColorWidgetGlow   = color.RGBA{177, 108, 255, 40}
	ColorWidgetBorder = color.RGBA{177, 108, 255, 110}
	ColorGrabbing     = color.RGBA{214, 170, 255, 255}
	ColorTitle        = color.RGBA{190, 170, 230, 255}
	ColorContent      = color.RGBA{240, 236, 250, 255}
	ColorListArea     = color.RGBA{20, 15, 32, 180}
)
