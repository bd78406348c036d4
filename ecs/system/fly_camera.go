package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

const (
	minPitch = -90.0
	maxPitch = 90.0
)

// FlyCameraSystem applies mouse-look and local-space translation to every
// entity with FlyCamera, Transform and Input. The cursor is captured on the
// first update and released, once, by the release key.
type FlyCameraSystem struct {
	cursor  CursorCapture
	started bool
}

func NewFlyCameraSystem(cursor CursorCapture) *FlyCameraSystem {
	return &FlyCameraSystem{cursor: cursor}
}

// Start acquires the cursor. Update calls it on the first frame.
func (s *FlyCameraSystem) Start() {
	if s.started {
		return
	}
	s.started = true
	if s.cursor != nil {
		s.cursor.Capture()
	}
}

func (s *FlyCameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.Start()

	ecs.ForEach2(w, component.FlyCameraComponent, component.TransformComponent, func(e ecs.Entity, cam *component.FlyCamera, t *component.Transform) {
		in, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			return
		}

		if in.ReleasePressed && s.cursor != nil && s.cursor.Captured() {
			s.cursor.Release()
		}

		t.Translate(MoveVector(in).Mul(cam.MoveSpeed * in.DT))

		cam.Look = StepLook(cam.Look, in.MouseX, in.MouseY, cam.Sensitivity, cam.InvertY)
		t.Rotation = LookRotation(cam.Look)
	})
}

// MoveVector builds the unit (or zero) local movement direction from the raw
// axes. The up key is checked before the down key.
func MoveVector(in *component.Input) mgl64.Vec3 {
	vertical := 0.0
	if in.Up {
		vertical = 1
	} else if in.Down {
		vertical = -1
	}
	v := mgl64.Vec3{in.Horizontal, vertical, in.Forward}
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// StepLook scales the mouse delta, accumulates it and clamps pitch.
func StepLook(look component.LookState, dx, dy, sensitivity float64, invertY bool) component.LookState {
	dx *= sensitivity
	dy *= sensitivity
	if invertY {
		dy = -dy
	}
	look.Yaw += dx
	look.Pitch = mgl64.Clamp(look.Pitch+dy, minPitch, maxPitch)
	return look
}

// LookRotation composes yaw about world Y with -pitch about local X and no
// roll. With +Z forward a negative X rotation tilts the view up.
func LookRotation(look component.LookState) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(look.Yaw), mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(mgl64.DegToRad(-look.Pitch), mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}
