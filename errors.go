package cubeworld

import "errors"

var (
	// ErrGeometry reports face corners that do not share exactly one coordinate.
	ErrGeometry = errors.New("invalid face geometry")
	// ErrDivisionByZero reports an attempt to normalise the zero vector.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDuplicateCube reports an add at an occupied coordinate.
	ErrDuplicateCube = errors.New("cube already exists")
	// ErrCubeNotFound reports a coordinate with no cube.
	ErrCubeNotFound = errors.New("no cube at coordinate")
	// ErrWorldFormat reports a malformed world file.
	ErrWorldFormat = errors.New("invalid world file")
)
