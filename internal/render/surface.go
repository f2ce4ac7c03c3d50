package render

import "image/color"

// Surface is the drawing API the renderer needs from the display.
type Surface interface {
	FillPolygon(xp, yp []float32, clr color.RGBA)
	StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA)
	FillRect(r Rect, clr color.RGBA)
	StrokeRect(r Rect, strokeWidth float32, clr color.RGBA)
	Line(x1, y1, x2, y2, strokeWidth float32, clr color.RGBA)
	Circle(cx, cy, r, strokeWidth float32, clr color.RGBA)
	Text(str string, x, y int)
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies strictly inside r.
func (r Rect) Contains(x, y float32) bool {
	return r.X < x && x < r.X+r.W && r.Y < y && y < r.Y+r.H
}
