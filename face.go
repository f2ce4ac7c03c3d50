package cubeworld

import "fmt"

// pickTolerance widens a face's extent when testing whether a point lies on
// it, so that hits exactly on a shared edge are not lost to rounding.
const pickTolerance = 1e-9

// Face is one axis-aligned unit square on the boundary of a cube.
type Face struct {
	Corners [2]Vector3
	// Facing is -1 when the outward normal points towards the negative axis
	// and +1 when it points towards the positive axis.
	Facing  int
	exposed bool
	plane   Plane
}

// NewFace builds a face from two opposite corners, which must agree in
// exactly one coordinate. facing must be -1 or +1.
func NewFace(c1, c2 Vector3, facing int) (*Face, error) {
	if facing != 1 && facing != -1 {
		return nil, fmt.Errorf("facing %d: %w", facing, ErrGeometry)
	}
	t, err := planeTypeOf(c1, c2)
	if err != nil {
		return nil, err
	}
	return &Face{
		Corners: [2]Vector3{c1, c2},
		Facing:  facing,
		exposed: true,
		plane:   NewPlane(t, c1),
	}, nil
}

func planeTypeOf(c1, c2 Vector3) (PlaneType, error) {
	shared := 0
	var t PlaneType
	if c1.X == c2.X {
		shared++
		t = PlaneYZ
	}
	if c1.Y == c2.Y {
		shared++
		t = PlaneXZ
	}
	if c1.Z == c2.Z {
		shared++
		t = PlaneXY
	}
	if shared != 1 {
		return 0, fmt.Errorf("corners %v and %v: %w", c1, c2, ErrGeometry)
	}
	return t, nil
}

func (f *Face) SetExposed(exposed bool) {
	f.exposed = exposed
}

func (f *Face) IsExposed() bool {
	return f.exposed
}

func (f *Face) PlaneType() PlaneType {
	return f.plane.Type
}

func (f *Face) Plane() Plane {
	return f.plane
}

// GetNormal returns the positive unit vector normal to the face, whatever
// its facing.
func (f *Face) GetNormal() Vector3 {
	return f.plane.Normal()
}

// PlaneOffset is the face's plane as a point, e.g. plane y = 5 is (0, 5, 0).
func (f *Face) PlaneOffset() Vector3 {
	return f.plane.Offset
}

// Vertices returns the four corners in winding order.
func (f *Face) Vertices() [4]Vector3 {
	c1, c2 := f.Corners[0], f.Corners[1]
	diff := c2.Sub(c1)
	axes := f.plane.Type.Axes()
	return [4]Vector3{
		c1,
		c1.Add(diff.Mul(axes[0])),
		c2,
		c1.Add(diff.Mul(axes[1])),
	}
}

// FacingPoint returns the corner of the empty cell this face looks into,
// which is where a cube placed against the face goes.
func (f *Face) FacingPoint() Lattice {
	if f.Facing == 1 {
		return f.Corners[0].Cell()
	}
	return f.Corners[0].Sub(f.GetNormal()).Cell()
}

// Contains reports whether p lies within the face's rectangle on every axis.
func (f *Face) Contains(p Vector3) bool {
	c1, c2 := f.Corners[0], f.Corners[1]
	return between(c1.X, c2.X, p.X) &&
		between(c1.Y, c2.Y, p.Y) &&
		between(c1.Z, c2.Z, p.Z)
}

func between(a, b, v float64) bool {
	return (a-v)*(b-v) <= pickTolerance
}

// Equal compares corners and facing only.
func (f *Face) Equal(o *Face) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.Corners == o.Corners && f.Facing == o.Facing
}

func (f *Face) String() string {
	return fmt.Sprintf("Face(%v, %v, %d)", f.Corners[0], f.Corners[1], f.Facing)
}
