package render

import (
	"github.com/smasonuk/cubeworld"
)

const lookedAtOutline = 5

// Projector turns a face into viewport points. *cubeworld.Camera is one.
type Projector interface {
	WindowCoords(f *cubeworld.Face) []cubeworld.Vector2
}

// ScreenPolygon maps viewport points onto a width x height surface.
func ScreenPolygon(coords []cubeworld.Vector2, width, height int) ([]float32, []float32) {
	xp := make([]float32, len(coords))
	yp := make([]float32, len(coords))
	for i, c := range coords {
		xp[i], yp[i] = c.ToScreen(width, height)
	}
	return xp, yp
}

// DrawScene paints the frame's groups in order, which is farthest first, so
// nearer faces cover farther ones. The group holding the looked-at face is
// outlined. It returns the number of polygons filled.
func DrawScene(s Surface, p Projector, frame cubeworld.Frame, palette Palette, width, height int) int {
	drawn := 0
	for _, g := range frame.Groups {
		fill := palette.Color(g.Material)
		outlined := frame.LookedAt != nil && g.Contains(frame.LookedAt)
		for _, f := range g.Faces {
			coords := p.WindowCoords(f)
			if len(coords) < 3 {
				continue
			}
			xp, yp := ScreenPolygon(coords, width, height)
			s.FillPolygon(xp, yp, fill)
			if outlined {
				s.StrokePolygon(xp, yp, lookedAtOutline, Black)
			}
			drawn++
		}
	}
	return drawn
}
