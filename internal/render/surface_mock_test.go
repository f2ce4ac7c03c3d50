package render

import "image/color"

type polygon struct {
	xp, yp []float32
	clr    color.RGBA
}

// recordingSurface is a Surface mock that keeps what was drawn.
type recordingSurface struct {
	fills   []polygon
	strokes []polygon
	rects   []Rect
	lines   int
	circles int
	texts   []string
}

func (s *recordingSurface) FillPolygon(xp, yp []float32, clr color.RGBA) {
	s.fills = append(s.fills, polygon{xp, yp, clr})
}

func (s *recordingSurface) StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	s.strokes = append(s.strokes, polygon{xp, yp, clr})
}

func (s *recordingSurface) FillRect(r Rect, clr color.RGBA) {
	s.rects = append(s.rects, r)
}

func (s *recordingSurface) StrokeRect(r Rect, strokeWidth float32, clr color.RGBA) {}

func (s *recordingSurface) Line(x1, y1, x2, y2, strokeWidth float32, clr color.RGBA) {
	s.lines++
}

func (s *recordingSurface) Circle(cx, cy, r, strokeWidth float32, clr color.RGBA) {
	s.circles++
}

func (s *recordingSurface) Text(str string, x, y int) {
	s.texts = append(s.texts, str)
}
