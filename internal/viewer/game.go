package viewer

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/cubeworld"
	"github.com/smasonuk/cubeworld/internal/config"
	"github.com/smasonuk/cubeworld/internal/render"
)

type Game struct {
	session  *cubeworld.Session
	cfg      *config.Config
	palette  render.Palette
	pause    *render.Pause
	surface  *imageSurface
	width    int
	height   int
	selected cubeworld.Material

	lastX, lastY int
	tracking     bool
}

func NewGame(s *cubeworld.Session, cfg *config.Config) *Game {
	w, h := cfg.Window.GetWidth(), cfg.Window.GetHeight()
	return &Game{
		session:  s,
		cfg:      cfg,
		palette:  render.DefaultPalette(),
		pause:    render.NewPause(w, h),
		surface:  &imageSurface{},
		width:    w,
		height:   h,
		selected: render.Hotbar[0],
	}
}

// Run opens the window and blocks until the game quits.
func Run(s *cubeworld.Session, cfg *config.Config) error {
	g := NewGame(s, cfg)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Window.GetTitle())
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.GetTickRate())
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	log.Println("Starting viewer...")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// syncCursor frees the cursor while the menu is up and captures it otherwise.
func (g *Game) syncCursor() {
	mode := ebiten.CursorModeCaptured
	if g.pause.Paused {
		mode = ebiten.CursorModeVisible
	}
	if ebiten.CursorMode() != mode {
		ebiten.SetCursorMode(mode)
		g.tracking = false
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause.Escape(g.session)
	}
	if g.pause.Paused {
		err := g.updateMenu()
		g.syncCursor()
		return err
	}
	g.syncCursor()

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.session.ToggleFlying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Jump()
	}
	if m, ok := hotbarSelection(inpututil.IsKeyJustPressed); ok {
		g.selected = m
	}

	g.updateLook()
	g.updateClicks()
	g.session.Tick(readIntent())
	return nil
}

func (g *Game) updateLook() {
	x, y := ebiten.CursorPosition()
	if g.tracking {
		g.session.Look(float64(x-g.lastX), float64(y-g.lastY))
	}
	g.lastX, g.lastY = x, y
	g.tracking = true
}

func (g *Game) updateClicks() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.session.Scoped() {
			g.session.Blast()
		} else if _, err := g.session.RemoveCube(); err != nil {
			log.Printf("Remove failed: %v", err)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// a rejected placement is already logged by the session
		_, _ = g.session.AddCube(g.selected)
	}
}

func (g *Game) updateMenu() error {
	x, y := ebiten.CursorPosition()
	g.pause.Menu.Hover(float32(x), float32(y))
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	switch g.pause.Click(g.session, float32(x), float32(y)) {
	case render.ActionSave:
		if err := cubeworld.SaveWorldFile(g.cfg.World.GetSavePath(), g.session.World); err != nil {
			log.Printf("Save failed: %v", err)
		}
	case render.ActionQuit:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.surface.begin(screen)
	if g.pause.Paused {
		screen.Fill(render.MenuColor)
		g.pause.Menu.Draw(s, g.width)
		return
	}

	if g.session.Scoped() {
		screen.Fill(render.ScopeColor)
	} else {
		screen.Fill(render.SkyColor)
	}
	render.DrawScene(s, g.session.Camera, g.session.Frame(), g.palette, g.width, g.height)
	if g.session.Scoped() {
		render.DrawScope(s, g.width, g.height)
	} else {
		render.DrawHotbar(s, g.palette, g.selected, g.width, g.height)
		render.DrawCrosshair(s, g.width, g.height)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
