package cubeworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCube(t *testing.T) {
	corner := NewLattice(-1, 2, 5)
	c := NewCube(corner, 'R')

	assert.Equal(t, Material('R'), c.Material)
	require.Len(t, c.Faces(), 6)

	seen := make(map[Vector3]bool)
	for _, v := range c.Vertices() {
		d := v.Sub(corner.Vector())
		for _, k := range []float64{d.X, d.Y, d.Z} {
			assert.True(t, k == 0 || k == 1, "vertex %v outside the unit cube", v)
		}
		seen[v] = true
	}
	assert.Len(t, seen, 8)

	for i, f := range c.Faces() {
		assert.Equal(t, 2*(i%2)-1, f.Facing, "face %d", i)
		assert.True(t, f.IsExposed(), "new faces start exposed")
		assert.Same(t, f, c.Face(Deltas[i]))
		for _, v := range f.Vertices() {
			assert.Contains(t, seen, v, "face %d vertex %v is not a cube vertex", i, v)
		}
	}
	assert.Nil(t, c.Face(NewLattice(2, 0, 0)))
}

func TestCubeHasFace(t *testing.T) {
	c := NewCube(NewLattice(0, 0, 0), MaterialDefault)
	top, _ := NewFace(NewVector3(0, 0, 1), NewVector3(1, 1, 1), 1)
	below, _ := NewFace(NewVector3(0, 0, 1), NewVector3(1, 1, 1), -1)

	assert.True(t, c.HasFace(top))
	assert.False(t, c.HasFace(below), "that is the bottom face of the cube above")
}

func TestCubeDistanceTo(t *testing.T) {
	c := NewCube(NewLattice(5, 5, 2), MaterialDefault)
	assert.True(t, almostEqual(c.DistanceTo(NewLattice(4, 4, 2)), 1.4142135))
	assert.Equal(t, 0.0, c.DistanceTo(NewLattice(5, 5, 2)))
}

func TestMaterialString(t *testing.T) {
	assert.Equal(t, "W", MaterialDefault.String())
	assert.Equal(t, ".", MaterialEmpty.String())
}
