package cubeworld

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vectorsAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVector3Unit(t *testing.T) {
	testCases := []struct {
		name string
		in   Vector3
	}{
		{"axis", NewVector3(0, 0, 5)},
		{"diagonal", NewVector3(1, 1, 1)},
		{"negative", NewVector3(-3, 4, 0)},
		{"tiny", NewVector3(1e-8, 0, 1e-8)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := tc.in.Unit()
			require.NoError(t, err)
			if !almostEqual(u.Magnitude(), 1) {
				t.Errorf("magnitude of %v = %f, want 1", u, u.Magnitude())
			}
			// same direction as the input
			if !almostEqual(u.Dot(tc.in), tc.in.Magnitude()) {
				t.Errorf("unit %v does not point along %v", u, tc.in)
			}
		})
	}
}

func TestVector3UnitOfZero(t *testing.T) {
	_, err := Vector3{}.Unit()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -5, 6)

	assert.Equal(t, NewVector3(5, -3, 9), a.Add(b))
	assert.Equal(t, NewVector3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, NewVector3(4, -10, 18), a.Mul(b))
	assert.Equal(t, NewVector3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, 6.0, a.Sum())
	assert.True(t, almostEqual(NewVector3(3, 4, 0).Magnitude(), 5))
	assert.True(t, almostEqual(a.DistanceTo(a.Add(NewVector3(0, 3, 4))), 5))
}

func TestVector3Intersect(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  Vector3
		x     float64
		wantY float64
		wantZ float64
	}{
		{"midpoint", NewVector3(0, 0, 0), NewVector3(2, 4, 6), 1, 2, 3},
		{"at start", NewVector3(1, 7, -2), NewVector3(3, 0, 0), 1, 7, -2},
		{"beyond end", NewVector3(0, 0, 0), NewVector3(1, 1, -1), 2, 2, -2},
		{"reversed", NewVector3(-1, 1, 1), NewVector3(1, 3, 1), 0.05, 2.05, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			y, z := tc.a.Intersect(tc.b, tc.x)
			if !almostEqual(y, tc.wantY) || !almostEqual(z, tc.wantZ) {
				t.Errorf("Intersect = (%f, %f), want (%f, %f)", y, z, tc.wantY, tc.wantZ)
			}
		})
	}
}

func TestVector3Cell(t *testing.T) {
	assert.Equal(t, NewLattice(4, 4, 2), NewVector3(4.5, 4.5, 2.62).Cell())
	assert.Equal(t, NewLattice(-1, 1, 2), NewVector3(-0.5, 1.2, 2.99).Cell())
	assert.Equal(t, NewLattice(3, 0, -3), NewVector3(3, 0, -3).Cell())
}

func TestLatticeAdjacent(t *testing.T) {
	p := NewLattice(1, 2, 3)
	adj := p.Adjacent()
	require.Len(t, adj, 6)
	for _, d := range Deltas {
		n, ok := adj[d]
		require.True(t, ok, "missing neighbour for %v", d)
		assert.Equal(t, p.Add(d), n)
		assert.True(t, almostEqual(n.Vector().DistanceTo(p.Vector()), 1))
	}
}

func TestLatticeLess(t *testing.T) {
	assert.True(t, NewLattice(0, 9, 9).Less(NewLattice(1, 0, 0)))
	assert.True(t, NewLattice(1, 0, 9).Less(NewLattice(1, 1, 0)))
	assert.True(t, NewLattice(1, 1, 0).Less(NewLattice(1, 1, 1)))
	assert.False(t, NewLattice(1, 1, 1).Less(NewLattice(1, 1, 1)))
}

func TestVector2ToScreen(t *testing.T) {
	x, y := Vector2{}.ToScreen(100, 80)
	assert.Equal(t, float32(50), x)
	assert.Equal(t, float32(40), y)

	// 0.05 viewport units is half the window width at width 100
	x, y = Vector2{X: 0.05, Y: 0.01}.ToScreen(100, 80)
	assert.InDelta(t, 100, x, 1e-4)
	assert.InDelta(t, 30, y, 1e-4)
}

func TestRotateVector2(t *testing.T) {
	r := RotateVector2(Vector2{X: 1}, math.Pi/2)
	if !almostEqual(r.X, 0) || !almostEqual(r.Y, 1) {
		t.Errorf("RotateVector2 = %v, want (0, 1)", r)
	}
	assert.Equal(t, Vector2{X: 2, Y: -4}, Vector2{X: 1, Y: -2}.Mult(2))
}
