package main

import (
	"fmt"
	"image/png"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"mission-control/background"
	"mission-control/input"
	"mission-control/layout"
	"mission-control/store"
	"mission-control/ui"
	"mission-control/widget"
)

type Mode string

const (
	ModeFree Mode = "free"
	ModeList Mode = "list"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFree, "":
		return ModeFree, nil
	case ModeList:
		return ModeList, nil
	}
	return "", fmt.Errorf("unknown board mode %q (want free or list)", s)
}

// controller is one arrangement mode. Only one is live at a time.
type controller interface {
	HandlePointer(ev input.Event)
	Cancel()
	Resize(w, h int)
	Draw(screen *ebiten.Image, face font.Face)
}

type GameOptions struct {
	Mode      Mode
	Widgets   []widget.Def
	Positions *store.Positions
	Snap      layout.SnapConfig
	Width     int
	Height    int
	Density   float64
	Seed      uint64
	Face      font.Face
	Clock     func() time.Time
	Logger    *log.Logger
}

type Game struct {
	widgets   []widget.Def
	positions *store.Positions
	snap      layout.SnapConfig
	logger    *log.Logger
	clock     func() time.Time
	face      font.Face

	queue    *layout.Queue
	field    *background.Field
	renderer background.Renderer
	pointer  *input.Pointer
	ui       *ui.UISystem

	mode  Mode
	board controller
	// the live pointer went down on a header button
	pointerOnUI bool

	screenWidth  int
	screenHeight int

	screenshotRequested bool
}

func NewGame(opts GameOptions) *Game {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Mode == "" {
		opts.Mode = ModeFree
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.Clock().UnixNano())
	}

	g := &Game{
		widgets:      opts.Widgets,
		positions:    opts.Positions,
		snap:         opts.Snap,
		logger:       opts.Logger,
		clock:        opts.Clock,
		face:         opts.Face,
		mode:         opts.Mode,
		screenWidth:  opts.Width,
		screenHeight: opts.Height,
		pointer:      input.NewPointer(),
	}
	g.queue = layout.NewQueue(g.clock())
	g.field = background.NewField(opts.Width, opts.Height, opts.Density, rand.New(rand.NewPCG(seed, seed>>1)))

	g.ui = ui.NewUISystem(g.getFace, g.getScreenSize, DrawTextLines)
	g.ui.AddButton("Reset", "R", 100, g.Reset)
	g.ui.AddButton("Mode", "Tab", 110, g.ToggleMode)

	g.reload()
	return g
}

func (g *Game) getFace() font.Face        { return g.face }
func (g *Game) getScreenSize() (int, int) { return g.screenWidth, g.screenHeight }
func (g *Game) Mode() Mode                { return g.mode }
func (g *Game) Queue() *layout.Queue      { return g.queue }
func (g *Game) Field() *background.Field  { return g.field }
func (g *Game) Status() *ui.StatusBar     { return g.ui.Status }

// reload rebuilds the active controller from the widget set and the store,
// as a fresh page load would.
func (g *Game) reload() {
	switch g.mode {
	case ModeList:
		g.board = NewListBoard(g.widgets, ListAreaFor(g.screenWidth, g.screenHeight), g.logger)
	default:
		g.board = NewBoard(g.widgets, g.positions, BoardOptions{
			Stage:     StageFor(g.screenWidth, g.screenHeight),
			Snap:      g.snap,
			Scheduler: g.queue,
			Clock:     g.clock,
		}, g.logger)
	}
	g.pointerOnUI = false
	g.ui.Status.Set(fmt.Sprintf("Ready (%s)", g.mode))
}

// Reset clears the stored layout and reloads the default arrangement.
// Pending writes from the previous board are dropped so they cannot
// resurrect the old layout.
func (g *Game) Reset() {
	g.positions.Clear()
	g.queue = layout.NewQueue(g.clock())
	g.reload()
	g.logger.Info("layout reset")
}

// ToggleMode switches between free and list arrangement. An active drag is
// released first so its write still happens.
func (g *Game) ToggleMode() {
	g.board.Cancel()
	if g.mode == ModeFree {
		g.mode = ModeList
	} else {
		g.mode = ModeFree
	}
	g.reload()
	g.logger.Info("mode changed", "mode", g.mode)
}

func (g *Game) Board() controller { return g.board }

// HandlePointer routes one pointer event to the live controller.
func (g *Game) HandlePointer(ev input.Event) {
	if ev.Kind == input.Down && g.ui.IsMouseOver(int(ev.X), int(ev.Y)) {
		g.pointerOnUI = true
		return
	}
	if g.pointerOnUI {
		if ev.Kind == input.Up || ev.Kind == input.Cancel {
			g.pointerOnUI = false
		}
		return
	}
	g.board.HandlePointer(ev)
}

// Tick runs the deferred tasks and advances the background. It is the part of
// Update that does not read devices.
func (g *Game) Tick() {
	g.queue.Advance(g.clock())
	g.field.Step()
}

func (g *Game) Update() error {
	g.Tick()
	g.handleControlKeys()
	g.ui.Update()
	for _, ev := range g.pointer.Poll() {
		g.HandlePointer(ev)
	}
	return nil
}

func (g *Game) handleControlKeys() {
	// --- Reset layout ---
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	// --- Switch mode ---
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.board.Cancel()
	}
	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	g.renderer.Draw(screen, g.field)
	g.board.Draw(screen, g.face)
	g.ui.Draw(screen)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := saveScreenshot(screen, ScreenshotFile); err != nil {
			g.logger.Error("screenshot failed", "err", err)
			g.ui.Status.SetError("screenshot failed")
		} else {
			g.logger.Info("screenshot saved", "file", ScreenshotFile)
		}
	}
}

func saveScreenshot(screen *ebiten.Image, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		g.field.Resize(outsideWidth, outsideHeight)
		g.board.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
