package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/smasonuk/cubeworld"
)

// HotbarSlots lays out one square slot per hotbar material along the bottom
// of the screen.
func HotbarSlots(width, height int) []Rect {
	cell := float32(width / 33)
	y := float32(height) - cell - 10
	slots := make([]Rect, len(Hotbar))
	for i := range Hotbar {
		x := float32(int(float32(width)/2 + (float32(i)-5.5)*cell))
		slots[i] = Rect{X: x, Y: y, W: cell, H: cell}
	}
	return slots
}

func hotbarIndex(m cubeworld.Material) int {
	for i, h := range Hotbar {
		if h == m {
			return i
		}
	}
	return -1
}

// DrawHotbar draws the material slots with the selected one highlighted.
func DrawHotbar(s Surface, palette Palette, selected cubeworld.Material, width, height int) {
	slots := HotbarSlots(width, height)
	for i, r := range slots {
		s.FillRect(r, palette.Color(Hotbar[i]))
		s.StrokeRect(r, 4, OutlineGrey)
	}
	if i := hotbarIndex(selected); i >= 0 {
		s.StrokeRect(slots[i], 8, colornames.Lightgrey)
	}
}

func DrawCrosshair(s Surface, width, height int) {
	cx, cy := float32(width/2), float32(height/2)
	s.Line(cx, cy-20, cx, cy+20, 4, OutlineGrey)
	s.Line(cx-20, cy, cx+20, cy, 4, OutlineGrey)
}

// DrawScope masks the screen outside a circular sight and draws its reticle.
func DrawScope(s Surface, width, height int) {
	w, h := float32(width), float32(height)
	cx, cy := w/2, h/2
	r := (h + 100) / 2
	const inset = 40

	if side := cx - r + inset; side > 0 {
		s.FillRect(Rect{X: 0, Y: 0, W: side, H: h}, Black)
		s.FillRect(Rect{X: w - side, Y: 0, W: side, H: h}, Black)
	}
	s.Circle(cx, cy, r-inset, 3, Black)
	s.Line(cx, 0, cx, h, 2, Black)
	s.Line(cx, cy+250, cx, h, 8, Black)
	s.Line(cx-r+inset, cy, cx+r-inset, cy, 2, Black)
	s.Line(cx-r+inset, cy, cx-r+inset+40, cy, 8, Black)
	s.Line(cx+r-inset, cy, cx+r-inset-40, cy, 8, Black)
	for i := 1; i <= 4; i++ {
		y := cy + float32(i*50)
		s.Line(cx-5, y-25, cx+5, y-25, 2, Black)
		s.Line(cx-15, y, cx+15, y, 2, Black)
	}
	drawStatusBars(s, cx, h)
}

// statusBars are the two gauges under the sight, by distance of their top
// edge from the bottom of the screen.
var statusBars = []struct {
	top   float32
	color color.RGBA
}{
	{170, colornames.Cornflowerblue},
	{140, colornames.Lime},
}

// drawStatusBars draws both gauges full.
func drawStatusBars(s Surface, cx, h float32) {
	const halfWidth, height = 225, 25
	for _, b := range statusBars {
		r := Rect{X: cx - halfWidth, Y: h - b.top, W: 2 * halfWidth, H: height}
		s.FillRect(r, b.color)
		s.Text("100", int(r.X)+32, int(r.Y)+5)
	}
}
