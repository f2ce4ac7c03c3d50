package cubeworld

import (
	"fmt"
	"sort"
)

// World is a sparse grid of cubes keyed by lattice coordinate. Every face of
// every cube is exposed exactly when the neighbouring cell on that side is
// empty.
type World struct {
	cubes map[Lattice]*Cube
}

func NewWorld() *World {
	return &World{cubes: make(map[Lattice]*Cube)}
}

// Add inserts c and recomputes exposure for its cell and the six around it.
func (w *World) Add(c *Cube) error {
	if _, found := w.cubes[c.Corner]; found {
		return fmt.Errorf("add at %v: %w", c.Corner, ErrDuplicateCube)
	}
	w.cubes[c.Corner] = c
	w.refresh(c.Corner)
	w.updateAdjacent(c.Corner)
	return nil
}

// Remove deletes the cube at coords and re-exposes its neighbours. Removing
// an empty cell does nothing.
func (w *World) Remove(coords Lattice) bool {
	if _, found := w.cubes[coords]; !found {
		return false
	}
	delete(w.cubes, coords)
	w.updateAdjacent(coords)
	return true
}

// Update recomputes the exposure of the cube at coords.
func (w *World) Update(coords Lattice) error {
	if _, found := w.cubes[coords]; !found {
		return fmt.Errorf("update at %v: %w", coords, ErrCubeNotFound)
	}
	w.refresh(coords)
	return nil
}

// UpdateAll recomputes exposure for every cube. Used after bulk loading.
func (w *World) UpdateAll() {
	for coords := range w.cubes {
		w.refresh(coords)
	}
}

func (w *World) refresh(coords Lattice) {
	cube := w.cubes[coords]
	for i, d := range Deltas {
		_, occupied := w.cubes[coords.Add(d)]
		cube.faces[i].SetExposed(!occupied)
	}
}

func (w *World) updateAdjacent(coords Lattice) {
	for _, n := range coords.Adjacent() {
		if _, found := w.cubes[n]; found {
			w.refresh(n)
		}
	}
}

func (w *World) Get(coords Lattice) (*Cube, bool) {
	c, found := w.cubes[coords]
	return c, found
}

func (w *World) Has(coords Lattice) bool {
	_, found := w.cubes[coords]
	return found
}

// Occupied reports whether the cell containing p holds a cube.
func (w *World) Occupied(p Vector3) bool {
	return w.Has(p.Cell())
}

func (w *World) Len() int {
	return len(w.cubes)
}

// Coords returns every occupied coordinate in lexicographic order.
func (w *World) Coords() []Lattice {
	coords := make([]Lattice, 0, len(w.cubes))
	for c := range w.cubes {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
	return coords
}

// CubeWithFace finds the cube owning a face equal to f.
func (w *World) CubeWithFace(f *Face) (*Cube, bool) {
	if f == nil {
		return nil, false
	}
	// the face's own cube is either at its corner or one step behind it
	candidates := []Lattice{f.Corners[0].Cell(), f.Corners[0].Sub(f.GetNormal()).Cell()}
	for _, coords := range candidates {
		if c, found := w.cubes[coords]; found && c.HasFace(f) {
			return c, true
		}
	}
	return nil, false
}
