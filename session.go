package cubeworld

import (
	"fmt"
	"log"
)

const (
	DefaultScopeFov         = 40.0
	DefaultScopeSensitivity = 0.2
)

// Options tunes a Session. Zero fields take the package defaults.
type Options struct {
	WalkSpeed        float64
	SprintSpeed      float64
	Gravity          float64
	Jump             float64
	Fov              float64
	ScopeFov         float64
	ScopeSensitivity float64
}

func (o Options) withDefaults() Options {
	if o.WalkSpeed == 0 {
		o.WalkSpeed = WalkSpeed
	}
	if o.SprintSpeed == 0 {
		o.SprintSpeed = SprintSpeed
	}
	if o.Gravity == 0 {
		o.Gravity = Gravity
	}
	if o.Jump == 0 {
		o.Jump = JumpVelocity
	}
	if o.Fov == 0 {
		o.Fov = DefaultFov
	}
	if o.ScopeFov == 0 {
		o.ScopeFov = DefaultScopeFov
	}
	if o.ScopeSensitivity == 0 {
		o.ScopeSensitivity = DefaultScopeSensitivity
	}
	return o
}

// Session owns the world, the player and its camera, and keeps the camera's
// derived state in step with every change to either.
type Session struct {
	World  *World
	Player *Player
	Camera *Camera

	opts     Options
	scope    bool
	fov      float64
	scopeFov float64
}

func NewSession(w *World, opts Options) *Session {
	opts = opts.withDefaults()
	cam := NewDefaultCamera()
	cam.SetFov(opts.Fov)
	p := NewPlayer(cam)
	p.SetSpeed(opts.WalkSpeed)
	s := &Session{
		World:    w,
		Player:   p,
		Camera:   cam,
		opts:     opts,
		fov:      opts.Fov,
		scopeFov: opts.ScopeFov,
	}
	s.liftClear()
	s.Refresh()
	return s
}

// maxSpawnLift bounds how far liftClear raises the spawn point.
const maxSpawnLift = 256

// liftClear raises the camera until the player's body is clear of cubes.
func (s *Session) liftClear() {
	start := s.Camera.GetPosition()
	for i := 0; i < maxSpawnLift && Collides(s.World, s.Camera.GetPosition()); i++ {
		s.Camera.AddZPosition(1)
	}
	if p := s.Camera.GetPosition(); p != start {
		log.Printf("Spawn moved from %v to %v", start, p)
	}
	s.Camera.UpdateCell()
}

// Refresh recomputes the visible faces and the looked-at face.
func (s *Session) Refresh() {
	s.Camera.UpdateVisibleFaces(s.World)
	s.Camera.UpdateLookedAtFace()
}

// Tick advances one step: gravity, movement and the looked-at face. It
// reports whether the camera entered a new cell.
func (s *Session) Tick(intent Intent) bool {
	if !s.Player.Flying {
		s.Player.SetVelocity(s.Player.Velocity + s.opts.Gravity)
	}
	if intent.Has(Sprint) {
		s.Player.SetSpeed(s.opts.SprintSpeed)
	} else {
		s.Player.SetSpeed(s.opts.WalkSpeed)
	}

	moved := s.Player.Move(s.World, intent)
	if moved {
		s.Camera.UpdateCell()
		s.Camera.UpdateVisibleFaces(s.World)
	}
	s.Camera.UpdateLookedAtFace()
	return moved
}

func (s *Session) Look(dx, dy float64) {
	if s.scope {
		dx *= s.opts.ScopeSensitivity
		dy *= s.opts.ScopeSensitivity
	}
	s.Camera.Look(dx, dy)
}

// Jump starts a jump if the player is standing still vertically.
func (s *Session) Jump() bool {
	if s.Player.Flying || s.Player.Velocity != 0 {
		return false
	}
	s.Player.SetVelocity(s.opts.Jump)
	return true
}

func (s *Session) ToggleFlying() {
	s.Player.SetFlying(!s.Player.Flying)
	s.Player.SetVelocity(0)
}

// SetFov sets the normal field of view. It is applied at once unless the
// scope is up.
func (s *Session) SetFov(fov float64) {
	s.fov = fov
	if !s.scope {
		s.Camera.SetFov(fov)
	}
}

func (s *Session) SetScope(on bool) {
	s.scope = on
	if on {
		s.Camera.SetFov(s.scopeFov)
	} else {
		s.Camera.SetFov(s.fov)
	}
}

func (s *Session) Scoped() bool {
	return s.scope
}

// AddCube places a cube of material against the looked-at face. It reports
// false when nothing is looked at.
func (s *Session) AddCube(material Material) (bool, error) {
	f := s.Camera.GetFaceLookedAt()
	if f == nil {
		return false, nil
	}
	corner := f.FacingPoint()
	if err := s.World.Add(NewCube(corner, material)); err != nil {
		log.Printf("Rejected cube %v at %v: %v", material, corner, err)
		return false, fmt.Errorf("place %v: %w", material, err)
	}
	s.Refresh()
	return true, nil
}

// RemoveCube deletes the cube owning the looked-at face. It reports false
// when nothing is looked at.
func (s *Session) RemoveCube() (bool, error) {
	f := s.Camera.GetFaceLookedAt()
	if f == nil {
		return false, nil
	}
	c, found := s.World.CubeWithFace(f)
	if !found {
		return false, fmt.Errorf("remove %v: %w", f, ErrCubeNotFound)
	}
	s.World.Remove(c.Corner)
	s.Refresh()
	return true, nil
}

// Blast removes every cube with a face on the view ray, at any distance,
// along with the six cubes around each. It returns how many were removed.
func (s *Session) Blast() int {
	var hit []Lattice
	for _, coords := range s.World.Coords() {
		cube := s.World.cubes[coords]
		for _, f := range cube.Faces() {
			if _, ok := s.Camera.LookingAt(f); ok {
				hit = append(hit, coords)
				break
			}
		}
	}

	removed := 0
	for _, coords := range hit {
		for _, n := range coords.Adjacent() {
			if s.World.Remove(n) {
				removed++
			}
		}
		if s.World.Remove(coords) {
			removed++
		}
	}
	if removed > 0 {
		s.Refresh()
	}
	return removed
}

// Frame is what the display surface needs for one redraw.
type Frame struct {
	Groups   []FaceGroup
	LookedAt *Face
}

func (s *Session) Frame() Frame {
	return Frame{
		Groups:   s.Camera.GetVisibleFaces(),
		LookedAt: s.Camera.GetFaceLookedAt(),
	}
}
