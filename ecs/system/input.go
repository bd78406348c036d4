package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

// InputSystem samples keyboard and cursor state into every Input component.
type InputSystem struct {
	lastX, lastY int
	primed       bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	dx, dy := 0.0, 0.0
	if i.primed {
		dx = float64(cx - i.lastX)
		// Screen y grows downward; Input.MouseY is positive upward.
		dy = float64(i.lastY - cy)
	}
	i.lastX, i.lastY = cx, cy
	i.primed = true

	horizontal := axis(
		[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	)
	forward := axis(
		[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
	)
	dt := 1.0 / float64(ebiten.TPS())
	toggle := inpututil.IsKeyJustPressed(ebiten.KeyP)

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, in *component.Input) {
		upKey, downKey, releaseKey := ebiten.KeyE, ebiten.KeyQ, ebiten.KeyEscape
		if cam, ok := ecs.Get(w, e, component.FlyCameraComponent); ok {
			upKey, downKey, releaseKey = cam.UpKey, cam.DownKey, cam.ReleaseKey
		}

		in.Horizontal = horizontal
		in.Forward = forward
		in.Up = ebiten.IsKeyPressed(upKey)
		in.Down = ebiten.IsKeyPressed(downKey)
		in.MouseX = dx
		in.MouseY = dy
		in.ReleasePressed = inpututil.IsKeyJustPressed(releaseKey)
		in.TogglePixelate = toggle
		in.DT = dt
	})
}

// axis maps held negative/positive keys to -1, 0 or +1.
func axis(neg, pos []ebiten.Key) float64 {
	v := 0.0
	if anyPressed(neg) {
		v -= 1
	}
	if anyPressed(pos) {
		v += 1
	}
	return v
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
