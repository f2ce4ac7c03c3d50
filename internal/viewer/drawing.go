package viewer

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/cubeworld/internal/render"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// whiteSubImage is the 1x1 source every triangle is drawn from. It is made
// on first use so the package loads without a graphics context.
func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// imageSurface draws onto an ebiten image. Its vertex and index buffers are
// kept between polygons and frames.
type imageSurface struct {
	screen   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	path     vector.Path
}

// begin points the surface at this frame's screen.
func (s *imageSurface) begin(screen *ebiten.Image) *imageSurface {
	s.screen = screen
	return s
}

func (s *imageSurface) FillPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	// fan triangulation from the first point
	s.indices = s.indices[:0]
	for i := 2; i < len(xp); i++ {
		s.indices = append(s.indices, 0, uint16(i-1), uint16(i))
	}

	s.vertices = s.vertices[:0]
	for i := range xp {
		s.vertices = append(s.vertices, ebiten.Vertex{DstX: xp[i], DstY: yp[i]})
	}
	s.drawTriangles(clr)
}

func (s *imageSurface) StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	s.path = vector.Path{}
	s.path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		s.path.LineTo(xp[i], yp[i])
	}
	s.path.Close()

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinMiter,
	}
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], strokeOp)
	s.drawTriangles(clr)
}

// drawTriangles paints the buffered triangles in a flat colour.
func (s *imageSurface) drawTriangles(clr color.RGBA) {
	cr, cg, cb, ca := colorScale(clr)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}
	s.screen.DrawTriangles(s.vertices, s.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *imageSurface) FillRect(r render.Rect, clr color.RGBA) {
	vector.DrawFilledRect(s.screen, r.X, r.Y, r.W, r.H, clr, false)
}

func (s *imageSurface) StrokeRect(r render.Rect, strokeWidth float32, clr color.RGBA) {
	vector.StrokeRect(s.screen, r.X, r.Y, r.W, r.H, strokeWidth, clr, false)
}

func (s *imageSurface) Line(x1, y1, x2, y2, strokeWidth float32, clr color.RGBA) {
	vector.StrokeLine(s.screen, x1, y1, x2, y2, strokeWidth, clr, true)
}

func (s *imageSurface) Circle(cx, cy, r, strokeWidth float32, clr color.RGBA) {
	vector.StrokeCircle(s.screen, cx, cy, r, strokeWidth, clr, true)
}

func (s *imageSurface) Text(str string, x, y int) {
	ebitenutil.DebugPrintAt(s.screen, str, x, y)
}

func colorScale(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0,
		float32(clr.G) / 255.0,
		float32(clr.B) / 255.0,
		float32(clr.A) / 255.0
}
