package cubeworld

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is an immutable point or direction in world space. Z is up.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func NewVector3FromVec(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Mul multiplies element-wise.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

func (v Vector3) Scale(a float64) Vector3 {
	return Vector3{X: v.X * a, Y: v.Y * a, Z: v.Z * a}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return v.Add(o.Scale(-1))
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Sum adds the components. For a vector with two zero components this is the
// value of the remaining one.
func (v Vector3) Sum() float64 {
	return v.X + v.Y + v.Z
}

// DistanceTo is the Euclidean distance between v and o.
func (v Vector3) DistanceTo(o Vector3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (v Vector3) Magnitude() float64 {
	return v.DistanceTo(Vector3{})
}

// Unit returns the vector of length 1 in the direction of v.
func (v Vector3) Unit() (Vector3, error) {
	r := v.Magnitude()
	if r == 0 {
		return Vector3{}, fmt.Errorf("unit of %v: %w", v, ErrDivisionByZero)
	}
	return v.Scale(1 / r), nil
}

// mustUnit is for call sites that never pass a zero vector.
func mustUnit(v Vector3) Vector3 {
	u, err := v.Unit()
	if err != nil {
		panic(err)
	}
	return u
}

// Intersect returns the y and z coordinates where the line through v and o
// crosses the plane X = x. v.X and o.X must differ.
func (v Vector3) Intersect(o Vector3, x float64) (float64, float64) {
	t := (x - v.X) / (o.X - v.X)
	y := (o.Y-v.Y)*t + v.Y
	z := (o.Z-v.Z)*t + v.Z
	return y, z
}

// Cell returns the lattice cell containing v.
func (v Vector3) Cell() Lattice {
	return Lattice{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)),
		Z: int(math.Floor(v.Z)),
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
