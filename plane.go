package cubeworld

// PlaneType identifies which principal plane a face lies in.
type PlaneType int

const (
	PlaneXY PlaneType = iota
	PlaneXZ
	PlaneYZ
)

var planeAxes = map[PlaneType][2]Vector3{
	PlaneXY: {{1, 0, 0}, {0, 1, 0}},
	PlaneXZ: {{1, 0, 0}, {0, 0, 1}},
	PlaneYZ: {{0, 1, 0}, {0, 0, 1}},
}

func (t PlaneType) String() string {
	switch t {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return "unknown"
	}
}

// Axes returns the two unit vectors spanning the plane.
func (t PlaneType) Axes() [2]Vector3 {
	return planeAxes[t]
}

// Normal returns the unit vector along the axis the plane is perpendicular to.
func (t PlaneType) Normal() Vector3 {
	a := planeAxes[t]
	return Vector3{1, 1, 1}.Sub(a[0]).Sub(a[1])
}

// Plane is an axis-aligned plane. Offset has the plane's constant coordinate
// on the normal axis and zero elsewhere, so plane y = 5 is (0, 5, 0).
type Plane struct {
	Type   PlaneType
	Offset Vector3
}

func NewPlane(t PlaneType, through Vector3) Plane {
	return Plane{Type: t, Offset: t.Normal().Mul(through)}
}

func (p Plane) Normal() Vector3 {
	return p.Type.Normal()
}

// Constant is the plane's coordinate on its normal axis.
func (p Plane) Constant() float64 {
	return p.Offset.Sum()
}

// LineIntersect finds where the ray origin + k*dir meets the plane. It
// reports false when the ray is parallel to the plane or the plane is behind
// the origin. The returned point lies exactly on the plane.
func (p Plane) LineIntersect(origin, dir Vector3) (Vector3, float64, bool) {
	normal := p.Normal()
	denom := dir.Mul(normal).Sum()
	if denom == 0 {
		return Vector3{}, 0, false
	}
	k := (p.Constant() - origin.Mul(normal).Sum()) / denom
	if k < 0 {
		return Vector3{}, 0, false
	}
	raw := origin.Add(dir.Scale(k))

	// keep the in-plane components and pin the off-plane one to the plane
	axes := p.Type.Axes()
	inPlane := axes[0].Add(axes[1])
	return raw.Mul(inPlane).Add(p.Offset), k, true
}
