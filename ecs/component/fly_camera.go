package component

import "github.com/hajimehoshi/ebiten/v2"

// FlyCamera configures mouse-look and free translation.
type FlyCamera struct {
	MoveSpeed   float64
	Sensitivity float64
	InvertY     bool

	UpKey      ebiten.Key
	DownKey    ebiten.Key
	ReleaseKey ebiten.Key

	Look LookState
}

// LookState accumulates look offsets in degrees. Pitch is kept within
// [-90, 90]; yaw is unbounded.
type LookState struct {
	Yaw   float64
	Pitch float64
}

var FlyCameraComponent = NewComponent[FlyCamera]()
