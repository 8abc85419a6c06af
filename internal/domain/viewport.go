package domain

import "math"

const (
	MinZoom = 0.1
	MaxZoom = 3.0
)

// Point is a 2D coordinate. Whether it is in screen or canvas space depends
// on where it came from.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Distance is the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return MinZoom
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Viewport maps canvas space to screen pixels: the content layer is
// translated by Offset and then scaled by Zoom.
type Viewport struct {
	Offset Point   `json:"offset"`
	Zoom   float64 `json:"zoom"`
}

// NewViewport returns the identity viewport.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToCanvas converts a screen point into canvas space. It is the inverse of ToScreen.
func (v Viewport) ToCanvas(screen Point) Point {
	return screen.Sub(v.Offset).Scale(1 / v.Zoom)
}

// ToScreen converts a canvas point into screen space.
func (v Viewport) ToScreen(canvas Point) Point {
	return canvas.Scale(v.Zoom).Add(v.Offset)
}

// Pan shifts the offset by a screen-space delta.
func (v Viewport) Pan(delta Point) Viewport {
	v.Offset = v.Offset.Add(delta)
	return v
}

// WithZoom returns v with a clamped zoom.
func (v Viewport) WithZoom(z float64) Viewport {
	v.Zoom = ClampZoom(z)
	return v
}

// CanvasDelta converts a screen-space drag delta into canvas units so that
// dragged content tracks the pointer at any zoom.
func (v Viewport) CanvasDelta(screenDelta Point) Point {
	return screenDelta.Scale(1 / v.Zoom)
}
