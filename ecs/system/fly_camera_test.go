package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

type fakeCursor struct {
	captured bool
	captures int
	releases int
}

func (c *fakeCursor) Capture() {
	c.captured = true
	c.captures++
}

func (c *fakeCursor) Release() {
	c.captured = false
	c.releases++
}

func (c *fakeCursor) Captured() bool {
	return c.captured
}

func newFlyCameraWorld(t *testing.T, cam component.FlyCamera) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.NewTransform(mgl64.Vec3{})); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.FlyCameraComponent, &cam); err != nil {
		t.Fatalf("add fly camera: %v", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	return w, e
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoveVectorIsUnitOrZero(t *testing.T) {
	for _, h := range []float64{-1, 0, 1} {
		for _, f := range []float64{-1, 0, 1} {
			for _, keys := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
				in := &component.Input{Horizontal: h, Forward: f, Up: keys[0], Down: keys[1]}
				l := MoveVector(in).Len()
				if !approx(l, 0) && !approx(l, 1) {
					t.Fatalf("expected unit or zero length for %+v, got %v", in, l)
				}
			}
		}
	}
}

func TestMoveVectorVertical(t *testing.T) {
	cases := []struct {
		name     string
		up, down bool
		want     float64
	}{
		{"none", false, false, 0},
		{"up", true, false, 1},
		{"down", false, true, -1},
		{"both_up_wins", true, true, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := MoveVector(&component.Input{Up: c.up, Down: c.down})
			if !approx(v.Y(), c.want) {
				t.Fatalf("expected y=%v, got %v", c.want, v.Y())
			}
		})
	}
}

func TestMoveVectorZeroStaysZero(t *testing.T) {
	v := MoveVector(&component.Input{})
	if v != (mgl64.Vec3{}) {
		t.Fatalf("expected zero vector, got %v", v)
	}
}

func TestStepLookClampsPitch(t *testing.T) {
	deltas := []float64{500, 1e6, -3, -1e7, 42, 89, 89, -0.5, 1e9}
	look := component.LookState{}
	for i, d := range deltas {
		look = StepLook(look, d, d, 1.5, i%2 == 0)
		if look.Pitch < -90 || look.Pitch > 90 {
			t.Fatalf("step %d: pitch %v out of range", i, look.Pitch)
		}
	}
}

func TestStepLookYawUnbounded(t *testing.T) {
	look := component.LookState{}
	for i := 0; i < 10; i++ {
		look = StepLook(look, 100, 0, 1, false)
	}
	if !approx(look.Yaw, 1000) {
		t.Fatalf("expected yaw 1000, got %v", look.Yaw)
	}
}

func TestStepLookInvert(t *testing.T) {
	normal := StepLook(component.LookState{}, 0, 10, 2, false)
	inverted := StepLook(component.LookState{}, 0, 10, 2, true)
	if !approx(normal.Pitch, 20) {
		t.Fatalf("expected pitch 20, got %v", normal.Pitch)
	}
	if !approx(inverted.Pitch, -20) {
		t.Fatalf("expected pitch -20, got %v", inverted.Pitch)
	}
}

func TestLookRotation(t *testing.T) {
	cases := []struct {
		name string
		look component.LookState
		want mgl64.Vec3
	}{
		{"identity", component.LookState{}, mgl64.Vec3{0, 0, 1}},
		{"pitch_up", component.LookState{Pitch: 90}, mgl64.Vec3{0, 1, 0}},
		{"pitch_down", component.LookState{Pitch: -90}, mgl64.Vec3{0, -1, 0}},
		{"yaw_right", component.LookState{Yaw: 90}, mgl64.Vec3{1, 0, 0}},
		{"yaw_wraps", component.LookState{Yaw: 450}, mgl64.Vec3{1, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LookRotation(c.look).Rotate(mgl64.Vec3{0, 0, 1})
			if !got.ApproxEqualThreshold(c.want, 1e-9) {
				t.Fatalf("expected forward %v, got %v", c.want, got)
			}
		})
	}
}

func TestFlyCameraSystemTranslatesLocally(t *testing.T) {
	w, e := newFlyCameraWorld(t, component.FlyCamera{MoveSpeed: 4, Sensitivity: 1})
	in, _ := ecs.Get(w, e, component.InputComponent)
	in.Forward = 1
	in.DT = 0.5

	cursor := &fakeCursor{}
	sys := NewFlyCameraSystem(cursor)
	sys.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if !tr.Position.ApproxEqualThreshold(mgl64.Vec3{0, 0, 2}, 1e-9) {
		t.Fatalf("expected position (0,0,2), got %v", tr.Position)
	}

	// Turn right, then moving forward follows the new heading.
	in.MouseX = 90
	sys.Update(w)
	in.MouseX = 0
	sys.Update(w)
	if !tr.Position.ApproxEqualThreshold(mgl64.Vec3{2, 0, 4}, 1e-9) {
		t.Fatalf("expected position (2,0,4), got %v", tr.Position)
	}
	if f := tr.Forward(); !f.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("expected heading +X after turning right, got %v", f)
	}
}

func TestFlyCameraSystemDiagonalNotFaster(t *testing.T) {
	w, e := newFlyCameraWorld(t, component.FlyCamera{MoveSpeed: 1})
	in, _ := ecs.Get(w, e, component.InputComponent)
	in.Forward, in.Horizontal, in.Up = 1, 1, true
	in.DT = 1

	NewFlyCameraSystem(nil).Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if l := tr.Position.Len(); !approx(l, 1) {
		t.Fatalf("expected displacement 1, got %v", l)
	}
}

func TestFlyCameraSystemCursorCapture(t *testing.T) {
	w, e := newFlyCameraWorld(t, component.FlyCamera{})
	in, _ := ecs.Get(w, e, component.InputComponent)
	cursor := &fakeCursor{}
	sys := NewFlyCameraSystem(cursor)

	sys.Update(w)
	if !cursor.Captured() || cursor.captures != 1 {
		t.Fatalf("expected cursor captured once on start, got captured=%v captures=%d", cursor.captured, cursor.captures)
	}

	in.ReleasePressed = true
	sys.Update(w)
	if cursor.Captured() {
		t.Fatalf("expected cursor released after release key")
	}

	in.ReleasePressed = false
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if cursor.Captured() || cursor.captures != 1 || cursor.releases != 1 {
		t.Fatalf("expected no recapture, got captured=%v captures=%d releases=%d", cursor.captured, cursor.captures, cursor.releases)
	}
}
