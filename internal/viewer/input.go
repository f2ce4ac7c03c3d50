package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/cubeworld"
	"github.com/smasonuk/cubeworld/internal/render"
)

var movementKeys = []struct {
	keys   []ebiten.Key
	intent cubeworld.Intent
}{
	{[]ebiten.Key{ebiten.KeyW}, cubeworld.MoveForward},
	{[]ebiten.Key{ebiten.KeyS}, cubeworld.MoveBack},
	{[]ebiten.Key{ebiten.KeyA}, cubeworld.MoveLeft},
	{[]ebiten.Key{ebiten.KeyD}, cubeworld.MoveRight},
	{[]ebiten.Key{ebiten.KeySpace}, cubeworld.MoveUp},
	{[]ebiten.Key{ebiten.KeyShiftLeft}, cubeworld.MoveDown},
	{[]ebiten.Key{ebiten.KeyControlLeft}, cubeworld.Sprint},
}

// hotbarKeys follow the hotbar's slot order.
var hotbarKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0, ebiten.KeyMinus,
}

// readIntent decodes the held keys once per tick.
func readIntent() cubeworld.Intent {
	var intent cubeworld.Intent
	for _, m := range movementKeys {
		for _, k := range m.keys {
			if ebiten.IsKeyPressed(k) {
				intent |= m.intent
			}
		}
	}
	return intent
}

// hotbarSelection returns the material of a hotbar key pressed this tick.
func hotbarSelection(justPressed func(ebiten.Key) bool) (cubeworld.Material, bool) {
	for i, k := range hotbarKeys {
		if i < len(render.Hotbar) && justPressed(k) {
			return render.Hotbar[i], true
		}
	}
	return 0, false
}
