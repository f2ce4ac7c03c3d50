package cubeworld

import "sort"

// FaceGroup is the camera-facing exposed faces of one cube.
type FaceGroup struct {
	Coords   Lattice
	Faces    []*Face
	Material Material
	// Distance from the camera's cell to the cube's corner.
	Distance float64
}

// Contains reports whether f is one of the group's faces.
func (g FaceGroup) Contains(f *Face) bool {
	for _, own := range g.Faces {
		if own.Equal(f) {
			return true
		}
	}
	return false
}

type FaceStore struct {
	groups []FaceGroup
}

func NewFaceStore() *FaceStore {
	return &FaceStore{groups: make([]FaceGroup, 0, 10)}
}

func (fs *FaceStore) AddGroup(g FaceGroup) {
	fs.groups = append(fs.groups, g)
}

func (fs *FaceStore) Groups() []FaceGroup {
	return fs.groups
}

// SortGroupsByDistance puts the farthest groups at the start of the slice.
// Equal distances fall back to coordinate order so the result is stable
// across map iteration orders.
func (fs *FaceStore) SortGroupsByDistance() {
	sort.Slice(fs.groups, func(i, j int) bool {
		if fs.groups[i].Distance != fs.groups[j].Distance {
			return fs.groups[i].Distance > fs.groups[j].Distance
		}
		return fs.groups[i].Coords.Less(fs.groups[j].Coords)
	})
}
