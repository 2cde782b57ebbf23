package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultSnapDuration = 150 * time.Millisecond
	DefaultPersistDelay = 160 * time.Millisecond
)

// Grid is an infinite lattice with square cells.
type Grid struct {
	Cell float64
}

// Nearest returns the lattice point closest to p. Halves round toward
// positive infinity.
func (g Grid) Nearest(p Point) Point {
	return Point{g.quantize(p.X), g.quantize(p.Y)}
}

func (g Grid) quantize(v float64) float64 {
	if g.Cell <= 0 {
		return v
	}
	return math.Floor(v/g.Cell+0.5) * g.Cell
}

// Decision is the outcome of releasing a widget at a position.
type Decision struct {
	Target   Point
	Distance float64
	Snapped  bool
}

// Decide snaps rel to the nearest grid point when it lies strictly closer
// than threshold. A distance equal to threshold does not snap.
func Decide(rel Point, grid Grid, threshold float64) Decision {
	target := grid.Nearest(rel)
	d := rel.Dist(target)
	return Decision{Target: target, Distance: d, Snapped: d < threshold}
}

type SnapConfig struct {
	Grid         Grid
	Threshold    float64
	SnapDuration time.Duration
	PersistDelay time.Duration
}

func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		Grid:         Grid{Cell: 120},
		Threshold:    60,
		SnapDuration: DefaultSnapDuration,
		PersistDelay: DefaultPersistDelay,
	}
}

// Snapper resolves a released widget and schedules the layout write.
type Snapper struct {
	cfg     SnapConfig
	sched   Scheduler
	persist func()
	logger  *log.Logger
}

func NewSnapper(cfg SnapConfig, sched Scheduler, persist func(), logger *log.Logger) *Snapper {
	if logger == nil {
		logger = log.Default()
	}
	return &Snapper{cfg: cfg, sched: sched, persist: persist, logger: logger}
}

func (s *Snapper) Config() SnapConfig { return s.cfg }

// Resolve animates h onto the grid or plays the bounce, then defers persist
// so it observes the settled position.
func (s *Snapper) Resolve(h Handle) Decision {
	d := Decide(h.Position(), s.cfg.Grid, s.cfg.Threshold)
	if d.Snapped {
		h.AnimateTo(d.Target, s.cfg.SnapDuration)
		s.logger.Debug("snap", "widget", h.ID(), "x", d.Target.X, "y", d.Target.Y, "dist", d.Distance)
	} else {
		h.PlayBounce()
		s.logger.Debug("no snap", "widget", h.ID(), "dist", d.Distance)
	}
	if s.persist != nil && s.sched != nil {
		s.sched.After(s.cfg.PersistDelay, s.persist)
	}
	return d
}
