package cubeworld

// Intent is the set of movement inputs held during one tick.
type Intent uint8

const (
	MoveForward Intent = 1 << iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Sprint
)

var intentDeltas = []struct {
	intent Intent
	delta  Vector3
}{
	{MoveForward, Vector3{1, 0, 0}},
	{MoveLeft, Vector3{0, -1, 0}},
	{MoveBack, Vector3{-1, 0, 0}},
	{MoveRight, Vector3{0, 1, 0}},
	{MoveUp, Vector3{0, 0, 1}},
	{MoveDown, Vector3{0, 0, -1}},
}

func (i Intent) Has(flag Intent) bool {
	return i&flag != 0
}

// Direction sums the held directions in the camera's frame: +X forward,
// +Y right, +Z up. Opposite inputs cancel.
func (i Intent) Direction() Vector3 {
	var dir Vector3
	for _, d := range intentDeltas {
		if i.Has(d.intent) {
			dir = dir.Add(d.delta)
		}
	}
	return dir
}
