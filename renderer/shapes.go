package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
	"vgfx/shapes"
)

// 2D shapes are given in normalized device coordinates and drawn with the
// built-in flat program, which goes through the same binding tracker as
// models. They must be drawn inside a frame.

// FillRect fills the rectangle whose bottom-left corner is pos.
func (c *Context) FillRect(pos, size mgl32.Vec2, col core.Color) error {
	return c.DrawShape(shapes.Rect(pos, size), col)
}

// FillRectCentered fills the rectangle centred on pos.
func (c *Context) FillRectCentered(pos, size mgl32.Vec2, col core.Color) error {
	return c.DrawShape(shapes.RectCentered(pos, size), col)
}

// DrawCircle strokes a circle outline.
func (c *Context) DrawCircle(pos mgl32.Vec2, r float32, col core.Color) error {
	return c.DrawShape(shapes.CircleOutline(pos, r), col)
}

// FillCircle fills a circle.
func (c *Context) FillCircle(pos mgl32.Vec2, r float32, col core.Color) error {
	return c.DrawShape(shapes.Circle(pos, r), col)
}

// FillPolygon fills a regular polygon of radius r whose first vertex sits
// at angle radians.
func (c *Context) FillPolygon(pos mgl32.Vec2, r, angle float32, sides int, col core.Color) error {
	return c.DrawShape(shapes.Polygon(pos, r, angle, sides), col)
}

// DrawLine strokes one segment.
func (c *Context) DrawLine(from, to mgl32.Vec2, col core.Color) error {
	return c.DrawShape(shapes.Line(from, to), col)
}

// DrawLines strokes a polyline through points.
func (c *Context) DrawLines(points []mgl32.Vec2, col core.Color) error {
	return c.DrawShape(shapes.Polyline(points), col)
}

// DrawShape draws any tessellated shape in one color.
func (c *Context) DrawShape(s shapes.Shape, col core.Color) error {
	if err := c.checkDraw(); err != nil {
		return err
	}
	if !s.Drawable() {
		return fmt.Errorf("renderer: %s shape with %d points", s.Mode, len(s.Points))
	}
	sh, err := c.builtinShader(&c.flatShader, "flat", flatVertexSrc, flatFragmentSrc)
	if err != nil {
		return err
	}
	if err := c.useShader(sh); err != nil {
		return err
	}
	c.SetVec4("color", col.Vec4())
	c.dev.DrawShape(s.Mode, s.Vertices())
	return nil
}
