// Package shapes tessellates flat 2D primitives into vertex lists in
// normalized device coordinates, where (-1,-1) is the bottom-left corner of
// the viewport and (1,1) the top-right.
package shapes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CircleSegments is the number of edges used to approximate a circle.
const CircleSegments = 32

// Mode selects how consecutive points are assembled.
type Mode int

const (
	// TriangleFan fills a convex outline from its first point.
	TriangleFan Mode = iota
	// LineLoop strokes a closed outline.
	LineLoop
	// LineStrip strokes an open polyline.
	LineStrip
	// Lines strokes independent point pairs.
	Lines
)

func (m Mode) String() string {
	switch m {
	case TriangleFan:
		return "triangle-fan"
	case LineLoop:
		return "line-loop"
	case LineStrip:
		return "line-strip"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Shape is a tessellated primitive ready for upload.
type Shape struct {
	Mode   Mode
	Points []mgl32.Vec2
}

// Rect is an axis-aligned rectangle with pos as its bottom-left corner.
func Rect(pos, size mgl32.Vec2) Shape {
	x0, y0 := pos[0], pos[1]
	x1, y1 := x0+size[0], y0+size[1]
	return Shape{Mode: TriangleFan, Points: []mgl32.Vec2{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1},
	}}
}

// RectCentered is a rectangle centred on pos.
func RectCentered(pos, size mgl32.Vec2) Shape {
	return Rect(pos.Sub(size.Mul(0.5)), size)
}

// Polygon is a regular polygon inscribed in a circle of radius r. angle
// rotates the first vertex counter-clockwise from the +X axis.
func Polygon(pos mgl32.Vec2, r, angle float32, sides int) Shape {
	return Shape{Mode: TriangleFan, Points: ring(pos, r, angle, sides)}
}

// Circle is a filled circle.
func Circle(pos mgl32.Vec2, r float32) Shape {
	return Polygon(pos, r, 0, CircleSegments)
}

// CircleOutline is the stroked circumference of a circle.
func CircleOutline(pos mgl32.Vec2, r float32) Shape {
	return Shape{Mode: LineLoop, Points: ring(pos, r, 0, CircleSegments)}
}

// Line is a single segment.
func Line(from, to mgl32.Vec2) Shape {
	return Shape{Mode: Lines, Points: []mgl32.Vec2{from, to}}
}

// Polyline joins the points in order.
func Polyline(points []mgl32.Vec2) Shape {
	return Shape{Mode: LineStrip, Points: append([]mgl32.Vec2(nil), points...)}
}

func ring(pos mgl32.Vec2, r, angle float32, sides int) []mgl32.Vec2 {
	if sides < 3 {
		sides = 3
	}
	pts := make([]mgl32.Vec2, sides)
	step := 2 * math32.Pi / float32(sides)
	for i := range pts {
		s, c := math32.Sincos(angle + float32(i)*step)
		pts[i] = mgl32.Vec2{pos[0] + r*c, pos[1] + r*s}
	}
	return pts
}

// Drawable reports whether the shape has enough points for its mode.
func (s Shape) Drawable() bool {
	switch s.Mode {
	case TriangleFan:
		return len(s.Points) >= 3
	case Lines:
		return len(s.Points) >= 2 && len(s.Points)%2 == 0
	default:
		return len(s.Points) >= 2
	}
}

// Vertices flattens the points to x,y pairs.
func (s Shape) Vertices() []float32 {
	out := make([]float32, 0, 2*len(s.Points))
	for _, p := range s.Points {
		out = append(out, p[0], p[1])
	}
	return out
}

// Bounds returns the minimum and maximum corners of the shape.
func (s Shape) Bounds() (mgl32.Vec2, mgl32.Vec2) {
	if len(s.Points) == 0 {
		return mgl32.Vec2{}, mgl32.Vec2{}
	}
	lo, hi := s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		lo = mgl32.Vec2{min(lo[0], p[0]), min(lo[1], p[1])}
		hi = mgl32.Vec2{max(hi[0], p[0]), max(hi[1], p[1])}
	}
	return lo, hi
}
