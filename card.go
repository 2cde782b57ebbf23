package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"mission-control/layout"
	"mission-control/widget"
)

type motion struct {
	from, to layout.Point
	start    time.Time
	duration time.Duration
}

// Card is a free-mode widget. It implements layout.Handle; its position is
// relative to the board stage and animations are evaluated against clock.
type Card struct {
	Def widget.Def

	pos   layout.Point
	size  layout.Size
	clock func() time.Time

	transitions bool
	elevated    bool
	grabbing    bool

	anim        *motion
	bounceStart time.Time
	bouncing    bool
}

var _ layout.Handle = (*Card)(nil)

func NewCard(def widget.Def, pos layout.Point, clock func() time.Time) *Card {
	return &Card{
		Def:         def,
		pos:         pos,
		size:        layout.Size{W: WidgetWidth, H: WidgetHeight},
		clock:       clock,
		transitions: true,
	}
}

func (c *Card) ID() string        { return c.Def.ID }
func (c *Card) Size() layout.Size { return c.size }
func (c *Card) Elevated() bool    { return c.elevated }
func (c *Card) Grabbing() bool    { return c.grabbing }

// Position is where the card is drawn right now, mid-animation included.
func (c *Card) Position() layout.Point {
	if c.anim == nil {
		return c.pos
	}
	t := float64(c.clock().Sub(c.anim.start)) / float64(c.anim.duration)
	if t >= 1 {
		c.pos = c.anim.to
		c.anim = nil
		return c.pos
	}
	return lerp(c.anim.from, c.anim.to, ease(t))
}

// Settled is where the card comes to rest once its animation finishes.
func (c *Card) Settled() layout.Point {
	if c.anim != nil {
		return c.anim.to
	}
	return c.pos
}

func (c *Card) Animating() bool {
	c.Position()
	return c.anim != nil
}

func (c *Card) SetPosition(p layout.Point) {
	c.anim = nil
	c.pos = p
}

func (c *Card) AnimateTo(p layout.Point, d time.Duration) {
	if !c.transitions || d <= 0 {
		c.SetPosition(p)
		return
	}
	c.anim = &motion{from: c.Position(), to: p, start: c.clock(), duration: d}
}

// SetTransitions(false) freezes a running animation where it is.
func (c *Card) SetTransitions(enabled bool) {
	if !enabled && c.anim != nil {
		c.pos = c.Position()
		c.anim = nil
	}
	c.transitions = enabled
}

func (c *Card) SetElevated(elevated bool) { c.elevated = elevated }
func (c *Card) SetGrabbing(grabbing bool) { c.grabbing = grabbing }

func (c *Card) PlayBounce() {
	c.bounceStart = c.clock()
	c.bouncing = true
}

// Lift is the cosmetic vertical offset of the bounce: up over one
// BounceDuration, back down over the next.
func (c *Card) Lift() float64 {
	if !c.bouncing {
		return 0
	}
	elapsed := c.clock().Sub(c.bounceStart)
	switch {
	case elapsed < BounceDuration:
		return -BounceLift * ease(float64(elapsed)/float64(BounceDuration))
	case elapsed < 2*BounceDuration:
		return -BounceLift * (1 - ease(float64(elapsed-BounceDuration)/float64(BounceDuration)))
	}
	c.bouncing = false
	return 0
}

// Bounds is the card's box on screen for a stage anchored at origin.
func (c *Card) Bounds(origin layout.Point) layout.Rect {
	return layout.Rect{Min: origin.Add(c.Position()), Size: c.size}
}

func (c *Card) Draw(screen *ebiten.Image, face font.Face, origin layout.Point) {
	r := c.Bounds(origin)
	x, y := float32(r.Min.X), float32(r.Min.Y+c.Lift())
	w, h := float32(r.Size.W), float32(r.Size.H)

	drawPanel(screen, x, y, w, h, c.grabbing)
	DrawTextLines(screen, face, c.Def.Title, int(x)+WidgetPadding, int(y)+WidgetPadding, ColorTitle)
	DrawTextLines(screen, face, c.Def.Content, int(x)+WidgetPadding, int(y)+WidgetPadding+28, ColorContent)
}

// drawPanel draws the shared glowing card body used by both modes.
func drawPanel(screen *ebiten.Image, x, y, w, h float32, highlight bool) {
	g := float32(GlowThickness)
	vector.DrawFilledRect(screen, x-g, y-g, w+2*g, h+2*g, ColorWidgetGlow, false)
	vector.DrawFilledRect(screen, x+ShadowOffset, y+ShadowOffset, w, h, ColorShadow, false)
	vector.DrawFilledRect(screen, x, y, w, h, ColorWidget, false)

	border := ColorWidgetBorder
	if highlight {
		border = ColorGrabbing
	}
	vector.StrokeRect(screen, x, y, w, h, BorderThickness, border, false)
}

// ease is a smoothstep curve on [0, 1].
func ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func lerp(a, b layout.Point, t float64) layout.Point {
	return layout.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
