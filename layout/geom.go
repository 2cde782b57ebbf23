package layout

import "math"

// Point is a pixel coordinate.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

type Size struct {
	W, H float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	Min  Point
	Size Size
}

func (r Rect) MaxX() float64 { return r.Min.X + r.Size.W }
func (r Rect) MaxY() float64 { return r.Min.Y + r.Size.H }

// MidY is the vertical midpoint of the box.
func (r Rect) MidY() float64 { return r.Min.Y + r.Size.H/2 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.MaxX() && p.Y >= r.Min.Y && p.Y < r.MaxY()
}
