package cubeworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickingWorld(t *testing.T, cubes ...Lattice) *World {
	t.Helper()
	w := NewWorld()
	for _, p := range cubes {
		require.NoError(t, w.Add(NewCube(p, MaterialDefault)))
	}
	return w
}

func lookedAt(w *World, yaw float64) *Face {
	c := NewCamera(DefaultCameraPosition, yaw, 0, DefaultFov)
	c.UpdateVisibleFaces(w)
	c.UpdateLookedAtFace()
	return c.GetFaceLookedAt()
}

func TestLookedAtFace(t *testing.T) {
	testCases := []struct {
		name    string
		cubes   []Lattice
		yaw     float64
		want    *Lattice // owning cube, nil for no pick
		wantX   float64  // plane of the picked face when it is an x face
		checkXY bool
	}{
		{name: "interior hit", cubes: []Lattice{{6, 5, 2}}, yaw: 330, want: &Lattice{6, 5, 2}, wantX: 6, checkXY: true},
		{name: "looking away", cubes: []Lattice{{6, 5, 2}}, yaw: 150},
		{name: "closest of two", cubes: []Lattice{{6, 4, 2}, {8, 4, 2}}, yaw: 0, want: &Lattice{6, 4, 2}, wantX: 6, checkXY: true},
		{name: "just in reach", cubes: []Lattice{{9, 4, 2}}, yaw: 0, want: &Lattice{9, 4, 2}, wantX: 9, checkXY: true},
		{name: "out of reach", cubes: []Lattice{{10, 4, 2}}, yaw: 0},
		{name: "far group skipped", cubes: []Lattice{{12, 4, 2}}, yaw: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := pickingWorld(t, tc.cubes...)
			f := lookedAt(w, tc.yaw)
			if tc.want == nil {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			c, found := w.CubeWithFace(f)
			require.True(t, found)
			assert.Equal(t, *tc.want, c.Corner)
			assert.Equal(t, -1, f.Facing)
			if tc.checkXY {
				assert.Equal(t, PlaneYZ, f.PlaneType())
				assert.Equal(t, tc.wantX, f.Plane().Constant())
			}
		})
	}
}

func TestLookedAtFaceOnSharedEdge(t *testing.T) {
	// the spawn view ray runs exactly along the edge where the near x and
	// near y faces of this cube meet
	w := pickingWorld(t, NewLattice(5, 5, 2))
	f := lookedAt(w, DefaultCameraYaw)
	require.NotNil(t, f)

	c, found := w.CubeWithFace(f)
	require.True(t, found)
	assert.Equal(t, NewLattice(5, 5, 2), c.Corner)
	assert.Equal(t, -1, f.Facing)
	assert.Contains(t, []PlaneType{PlaneYZ, PlaneXZ}, f.PlaneType())
}

func TestLookingAtDistance(t *testing.T) {
	c := NewCamera(DefaultCameraPosition, 330, 0, DefaultFov)
	cube := NewCube(NewLattice(6, 5, 2), MaterialDefault)

	d, ok := c.LookingAt(cube.Face(NewLattice(-1, 0, 0)))
	require.True(t, ok)
	// 1.5 along x at cos 30 degrees
	assert.True(t, almostEqual(d, 1.7320508), "distance %f", d)

	_, ok = c.LookingAt(cube.Face(NewLattice(0, -1, 0)))
	assert.False(t, ok, "the ray crosses y = 5 before the cube starts")
}

func TestLookedAtFaceIgnoresHiddenGroups(t *testing.T) {
	c := NewCamera(DefaultCameraPosition, 0, 0, DefaultFov)
	cube := NewCube(NewLattice(6, 4, 2), MaterialDefault)
	far := FaceGroup{
		Coords:   cube.Corner,
		Faces:    []*Face{cube.Face(NewLattice(-1, 0, 0))},
		Distance: pickRadius + 0.5,
	}
	assert.Nil(t, LookedAtFace(c, []FaceGroup{far}))

	far.Distance = 2
	assert.Same(t, cube.Face(NewLattice(-1, 0, 0)), LookedAtFace(c, []FaceGroup{far}))
}
