package cubeworld

import "github.com/go-gl/mathgl/mgl64"

const (
	WalkSpeed    = 0.2
	SprintSpeed  = 0.3
	Gravity      = -0.06
	JumpVelocity = -8 * Gravity
)

// The player's body is a box around the eye: 0.3 either side horizontally,
// sampled at the feet, the middle and just above the eye.
const (
	bodyHalfWidth = 0.3
	feetOffset    = -1.62
	waistOffset   = -0.72
	headOffset    = 0.18
)

// Player moves a Camera through a World. The camera position is the eye.
type Player struct {
	Camera   *Camera
	Speed    float64
	Flying   bool
	Velocity float64
}

func NewPlayer(c *Camera) *Player {
	return &Player{Camera: c, Speed: WalkSpeed}
}

func (p *Player) SetSpeed(speed float64) {
	p.Speed = speed
}

func (p *Player) SetFlying(flying bool) {
	p.Flying = flying
}

func (p *Player) SetVelocity(v float64) {
	p.Velocity = v
}

// Collides reports whether a player with the eye at eye would overlap a cube.
func Collides(w *World, eye Vector3) bool {
	for _, dz := range []float64{feetOffset, waistOffset, headOffset} {
		for _, dy := range []float64{-bodyHalfWidth, bodyHalfWidth} {
			for _, dx := range []float64{-bodyHalfWidth, bodyHalfWidth} {
				if w.Occupied(eye.Add(Vector3{dx, dy, dz})) {
					return true
				}
			}
		}
	}
	return false
}

// Move applies one tick of movement for the held intent and reports whether
// the camera has entered a new cell. Each axis is tried on its own, so the
// player slides along walls; a blocked vertical step while walking stops
// the fall or the jump.
func (p *Player) Move(w *World, intent Intent) bool {
	dir := intent.Direction()

	var unit Vector3
	if p.Flying {
		if dir == (Vector3{}) {
			return false
		}
		unit = mustUnit(dir)
	} else {
		if dir.X != 0 || dir.Y != 0 {
			unit = mustUnit(Vector3{X: dir.X, Y: dir.Y})
		}
		unit = unit.Add(Vector3{Z: p.Velocity})
	}

	horizontal := RotateVector2(Vector2{X: unit.X, Y: unit.Y}.Mult(p.Speed), -mgl64.DegToRad(p.Camera.Yaw()))
	dz := unit.Z
	if p.Flying {
		dz *= p.Speed
	}

	c := p.Camera
	steps := []struct {
		delta  Vector3
		commit func(float64)
		amount float64
	}{
		{Vector3{X: horizontal.X}, c.AddXPosition, horizontal.X},
		{Vector3{Y: horizontal.Y}, c.AddYPosition, horizontal.Y},
		{Vector3{Z: dz}, c.AddZPosition, dz},
	}
	for i, s := range steps {
		if !Collides(w, c.GetPosition().Add(s.delta)) {
			s.commit(s.amount)
		} else if i == 2 && !p.Flying {
			p.Velocity = 0
		}
	}
	return c.InNewCell()
}
