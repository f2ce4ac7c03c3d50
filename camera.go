package cubeworld

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	lookSensitivity = 0.3
	maxPitch        = 90.0

	DefaultFov = 80.0
)

var (
	DefaultCameraPosition = Vector3{4.5, 4.5, 2.62}
	DefaultCameraYaw      = 315.0
)

// Camera is a first-person viewer. Its direction is spherical: a yaw about
// the vertical axis and a pitch above the horizontal, both in degrees. The
// rotation matrix, the visible faces and the looked-at face are derived from
// that state and refreshed through the Update methods.
type Camera struct {
	cameraPosition Vector3
	// distance from the eye to the projection plane, derived from fov
	distance float64
	yaw      float64
	pitch    float64
	fov      float64
	matrix   Matrix
	cell     Lattice

	visible  *FaceStore
	lookedAt *Face
}

func NewCamera(position Vector3, yaw, pitch, fov float64) *Camera {
	c := &Camera{
		cameraPosition: position,
		yaw:            wrapDegrees(yaw),
		pitch:          mgl64.Clamp(pitch, -maxPitch, maxPitch),
		cell:           position.Cell(),
		visible:        NewFaceStore(),
	}
	c.SetFov(fov)
	c.matrix = NewCameraMatrix(c.yaw, c.pitch)
	return c
}

// NewDefaultCamera places the camera at the spawn point used by new sessions.
func NewDefaultCamera() *Camera {
	return NewCamera(DefaultCameraPosition, DefaultCameraYaw, 0, DefaultFov)
}

// ProjectionDistance returns the distance to a projection window 0.1 wide
// for the given field of view in degrees.
func ProjectionDistance(fov float64) float64 {
	return 1 / (20 * math.Tan(mgl64.DegToRad(fov)/2))
}

// SetFov does not range-check fov; callers keep it within 30..110.
func (c *Camera) SetFov(fov float64) {
	c.fov = fov
	c.distance = ProjectionDistance(fov)
}

func (c *Camera) Fov() float64 {
	return c.fov
}

func (c *Camera) Distance() float64 {
	return c.distance
}

// Look turns the camera by a pointer delta. Horizontal motion wraps the yaw
// and vertical motion is clamped so the camera never flips over.
func (c *Camera) Look(dx, dy float64) {
	c.SetDirection(c.yaw-dx*lookSensitivity, c.pitch-dy*lookSensitivity)
}

func (c *Camera) SetDirection(yaw, pitch float64) {
	c.yaw = wrapDegrees(yaw)
	c.pitch = mgl64.Clamp(pitch, -maxPitch, maxPitch)
	c.matrix = NewCameraMatrix(c.yaw, c.pitch)
}

func (c *Camera) Yaw() float64 {
	return c.yaw
}

func (c *Camera) Pitch() float64 {
	return c.pitch
}

func (c *Camera) GetMatrix() Matrix {
	return c.matrix
}

// DirectionVector is the unit vector the camera looks along.
func (c *Camera) DirectionVector() Vector3 {
	h := mgl64.DegToRad(c.yaw)
	v := mgl64.DegToRad(c.pitch)
	return Vector3{
		X: math.Cos(h) * math.Cos(v),
		Y: -math.Sin(h) * math.Cos(v),
		Z: math.Sin(v),
	}
}

func (c *Camera) GetPosition() Vector3 {
	return c.cameraPosition
}

func (c *Camera) SetCameraPosition(p Vector3) {
	c.cameraPosition = p
}

func (c *Camera) AddXPosition(x float64) {
	c.cameraPosition.X += x
}

func (c *Camera) AddYPosition(y float64) {
	c.cameraPosition.Y += y
}

func (c *Camera) AddZPosition(z float64) {
	c.cameraPosition.Z += z
}

// Cell is the lattice cell the visible faces were last computed from.
func (c *Camera) Cell() Lattice {
	return c.cell
}

// UpdateCell records the cell the camera is in now.
func (c *Camera) UpdateCell() {
	c.cell = c.cameraPosition.Cell()
}

// InNewCell reports whether the camera has left the cell recorded by
// UpdateCell.
func (c *Camera) InNewCell() bool {
	return c.cameraPosition.Cell() != c.cell
}

// CanSee reports whether the camera is on the outward side of f's plane.
func (c *Camera) CanSee(f *Face) bool {
	plane := f.Plane()
	offset := plane.Constant() - c.cameraPosition.Mul(plane.Normal()).Sum()
	return offset*float64(f.Facing) < 0
}

// VisibleFaces collects, for every cube in w, the exposed faces c can see,
// ordered farthest first.
func VisibleFaces(c *Camera, w *World) *FaceStore {
	store := NewFaceStore()
	for coords, cube := range w.cubes {
		var faces []*Face
		for _, f := range cube.ExposedFaces() {
			if c.CanSee(f) {
				faces = append(faces, f)
			}
		}
		if len(faces) == 0 {
			continue
		}
		store.AddGroup(FaceGroup{
			Coords:   coords,
			Faces:    faces,
			Material: cube.Material,
			Distance: cube.DistanceTo(c.cell),
		})
	}
	store.SortGroupsByDistance()
	return store
}

// UpdateVisibleFaces must be called after any change to w and whenever the
// camera enters a new cell.
func (c *Camera) UpdateVisibleFaces(w *World) {
	c.visible = VisibleFaces(c, w)
}

func (c *Camera) GetVisibleFaces() []FaceGroup {
	return c.visible.Groups()
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
