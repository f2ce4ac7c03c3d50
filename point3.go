package cubeworld

import "fmt"

// Lattice is an integer grid coordinate. A cube at Lattice p occupies
// [p, p+1) on every axis.
type Lattice struct {
	X int
	Y int
	Z int
}

func NewLattice(x, y, z int) Lattice {
	return Lattice{X: x, Y: y, Z: z}
}

// Deltas are the six unit steps to a cube's neighbours, in face order:
// below, above, -y, +y, -x, +x.
var Deltas = [6]Lattice{
	{0, 0, -1}, {0, 0, 1},
	{0, -1, 0}, {0, 1, 0},
	{-1, 0, 0}, {1, 0, 0},
}

func (p Lattice) Add(o Lattice) Lattice {
	return Lattice{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Adjacent returns the six neighbouring coordinates keyed by the step that
// reaches them.
func (p Lattice) Adjacent() map[Lattice]Lattice {
	neighbours := make(map[Lattice]Lattice, len(Deltas))
	for _, d := range Deltas {
		neighbours[d] = p.Add(d)
	}
	return neighbours
}

func (p Lattice) Vector() Vector3 {
	return Vector3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Less orders coordinates lexicographically by x, y then z.
func (p Lattice) Less(o Lattice) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.Z < o.Z
}

func (p Lattice) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
