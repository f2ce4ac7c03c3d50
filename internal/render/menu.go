package render

import (
	"golang.org/x/image/colornames"

	"github.com/smasonuk/cubeworld"
)

// Action is what a menu button does when clicked.
type Action int

const (
	ActionNone Action = iota
	ActionResume
	ActionToggleScope
	ActionFov70
	ActionFov80
	ActionFov90
	ActionSave
	ActionQuit
)

// Fov returns the field of view an action selects, if it selects one.
func (a Action) Fov() (float64, bool) {
	switch a {
	case ActionFov70:
		return 70, true
	case ActionFov80:
		return 80, true
	case ActionFov90:
		return 90, true
	}
	return 0, false
}

type Button struct {
	Rect   Rect
	Text   string
	Action Action
	Hover  bool
}

// Menu is the pause menu's buttons, laid out around the screen centre.
type Menu struct {
	Buttons []*Button
}

func NewMenu(width, height int) *Menu {
	mx, my := float32(width/2), float32(height/2)
	b := func(x1, y1, x2, y2 float32, text string, a Action) *Button {
		return &Button{Rect: Rect{X: mx + x1, Y: my + y1, W: x2 - x1, H: y2 - y1}, Text: text, Action: a}
	}
	return &Menu{Buttons: []*Button{
		b(-400, -50, 400, 0, "Back to Game", ActionResume),
		b(-400, 50, 400, 100, "Toggle Gamemode", ActionToggleScope),
		b(-400, 150, -150, 200, "FOV 70", ActionFov70),
		b(-125, 150, 125, 200, "FOV 80", ActionFov80),
		b(150, 150, 400, 200, "FOV 90", ActionFov90),
		b(-400, 250, 400, 300, "Save World", ActionSave),
		b(-400, 350, 400, 400, "Quit Game", ActionQuit),
	}}
}

// Hover marks the button under the cursor.
func (m *Menu) Hover(x, y float32) {
	for _, b := range m.Buttons {
		b.Hover = b.Rect.Contains(x, y)
	}
}

// Click returns the action of the button under the cursor.
func (m *Menu) Click(x, y float32) Action {
	action := ActionNone
	for _, b := range m.Buttons {
		if b.Rect.Contains(x, y) {
			action = b.Action
		}
	}
	return action
}

func (m *Menu) Draw(s Surface, width int) {
	s.Text("CUBE WORLD", width/2-30, 250)
	for _, b := range m.Buttons {
		fill, outline := colornames.Silver, colornames.Darkgrey
		if b.Hover {
			fill, outline = colornames.Grey, colornames.Dimgrey
		}
		s.FillRect(b.Rect, fill)
		s.StrokeRect(b.Rect, 2, outline)
		s.Text(b.Text, int(b.Rect.X+b.Rect.W/2)-len(b.Text)*3, int(b.Rect.Y+b.Rect.H/2)-8)
	}
}

// Pause is the pause menu's state machine over a session.
type Pause struct {
	Menu   *Menu
	Paused bool
}

func NewPause(width, height int) *Pause {
	return &Pause{Menu: NewMenu(width, height)}
}

// Escape opens or closes the menu. Leaving the menu this way also drops the
// scope.
func (p *Pause) Escape(s *cubeworld.Session) {
	p.Paused = !p.Paused
	if !p.Paused {
		s.SetScope(false)
	}
}

// Click applies the action of the button at (x, y) to s. Save and quit are
// returned for the caller to carry out; every other action comes back as
// ActionNone.
func (p *Pause) Click(s *cubeworld.Session, x, y float32) Action {
	action := p.Menu.Click(x, y)
	if fov, ok := action.Fov(); ok {
		s.SetFov(fov)
		return ActionNone
	}
	switch action {
	case ActionResume:
		p.Paused = false
	case ActionToggleScope:
		s.SetScope(!s.Scoped())
	case ActionSave, ActionQuit:
		return action
	}
	return ActionNone
}
