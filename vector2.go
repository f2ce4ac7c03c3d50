package cubeworld

import "math"

// Vector2 is a point on the projection plane, in viewport units. X runs
// right and Y runs up.
type Vector2 struct {
	X float64
	Y float64
}

func RotateVector2(v Vector2, angle float64) Vector2 {
	cosAngle := math.Cos(angle)
	sinAngle := math.Sin(angle)

	newX := v.X*cosAngle - v.Y*sinAngle
	newY := v.X*sinAngle + v.Y*cosAngle

	return Vector2{X: newX, Y: newY}
}

// mult by scalar
func (v Vector2) Mult(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// ToScreen maps a viewport point to pixel coordinates on a width x height
// surface with the origin at its centre.
func (v Vector2) ToScreen(width, height int) (float32, float32) {
	scale := 10 * float64(width)
	x := float64(width)/2 + v.X*scale
	y := float64(height)/2 - v.Y*scale
	return float32(x), float32(y)
}
