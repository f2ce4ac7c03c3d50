package cubeworld

// Material is an opaque single-character block tag, such as 'R' or 'W'.
// '.' is reserved for empty space in world files.
type Material byte

const (
	MaterialEmpty   Material = '.'
	MaterialDefault Material = 'W'
)

func (m Material) String() string {
	return string(rune(m))
}

// per axis pair: the step to the far face and the plane both faces lie in
var (
	farCornerDeltas = [3]Vector3{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}
	faceSpans       = [3]Vector3{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}}
)

// Cube is a unit cube whose minimum corner is Corner.
type Cube struct {
	Corner   Lattice
	Material Material
	vertices [8]Vector3
	faces    [6]*Face
}

func NewCube(corner Lattice, material Material) *Cube {
	c := &Cube{Corner: corner, Material: material}
	origin := corner.Vector()
	for i := range c.vertices {
		d := Vector3{float64(i % 2), float64(i / 2 % 2), float64(i / 4 % 2)}
		c.vertices[i] = origin.Add(d)
	}
	for i := range c.faces {
		pair := i / 2
		faceCorner := origin
		facing := -1
		if i%2 == 1 {
			faceCorner = origin.Add(farCornerDeltas[pair])
			facing = 1
		}
		f, err := NewFace(faceCorner, faceCorner.Add(faceSpans[pair]), facing)
		if err != nil {
			// the spans above always share exactly one coordinate
			panic(err)
		}
		c.faces[i] = f
	}
	return c
}

func (c *Cube) Vertices() [8]Vector3 {
	return c.vertices
}

// Faces returns the six faces in Deltas order.
func (c *Cube) Faces() []*Face {
	return c.faces[:]
}

// Face returns the face on the side reached by the step delta, or nil if
// delta is not one of Deltas.
func (c *Cube) Face(delta Lattice) *Face {
	for i, d := range Deltas {
		if d == delta {
			return c.faces[i]
		}
	}
	return nil
}

func (c *Cube) ExposedFaces() []*Face {
	exposed := make([]*Face, 0, len(c.faces))
	for _, f := range c.faces {
		if f.IsExposed() {
			exposed = append(exposed, f)
		}
	}
	return exposed
}

// HasFace reports whether f is one of this cube's faces by value.
func (c *Cube) HasFace(f *Face) bool {
	for _, own := range c.faces {
		if own.Equal(f) {
			return true
		}
	}
	return false
}

// DistanceTo is the distance between the two cubes' corners.
func (c *Cube) DistanceTo(o Lattice) float64 {
	return c.Corner.Vector().DistanceTo(o.Vector())
}
