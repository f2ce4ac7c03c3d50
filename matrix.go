package cubeworld

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix rotates world-space offsets into the camera frame, where +X is the
// view direction.
type Matrix struct {
	m mgl64.Mat3
}

// NewCameraMatrix yaws by h degrees about Z and then pitches by v degrees.
// Row 0 is the forward unit vector, matching DirectionVector.
func NewCameraMatrix(h, v float64) Matrix {
	yaw := mgl64.Rotate3DZ(mgl64.DegToRad(h))
	pitch := mgl64.Rotate3DY(mgl64.DegToRad(v))
	return Matrix{m: pitch.Mul3(yaw)}
}

func (m Matrix) RotateVector3(v Vector3) Vector3 {
	return NewVector3FromVec(m.m.Mul3x1(v.Vec()))
}

func (m Matrix) Row(i int) Vector3 {
	return NewVector3FromVec(m.m.Row(i))
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		row := m.m.Row(i)
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
