package entity

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/prefabs"
)

// NewCamera creates the main fly camera from camera.yaml.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.MainCameraTagComponent, &component.MainCameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	pos := mgl64.Vec3{spec.Transform.X, spec.Transform.Y, spec.Transform.Z}
	if err := ecs.Add(w, camera, component.TransformComponent, component.NewTransform(pos)); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	fly := FlyCameraFromSpec(spec.FlyCamera)
	if err := ecs.Add(w, camera, component.FlyCameraComponent, &fly); err != nil {
		return 0, fmt.Errorf("camera: add fly camera: %w", err)
	}

	if err := ecs.Add(w, camera, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}

	pix := PixelationFromSpec(spec.Pixelation)
	if err := ecs.Add(w, camera, component.PixelationComponent, &pix); err != nil {
		return 0, fmt.Errorf("camera: add pixelation: %w", err)
	}

	return camera, nil
}

// ApplyCameraSpec updates the settings of an existing camera in place. The
// accumulated look state and position are kept.
func ApplyCameraSpec(w *ecs.World, camera ecs.Entity, spec *prefabs.CameraSpec) bool {
	fly, ok := ecs.Get(w, camera, component.FlyCameraComponent)
	if !ok {
		return false
	}
	look := fly.Look
	*fly = FlyCameraFromSpec(spec.FlyCamera)
	fly.Look = look
	return true
}

func FlyCameraFromSpec(spec prefabs.FlyCameraSpec) component.FlyCamera {
	speed := spec.MoveSpeed
	if speed == 0 {
		speed = 5
	}
	return component.FlyCamera{
		MoveSpeed:   speed,
		Sensitivity: spec.Sensitivity,
		InvertY:     spec.InvertY,
		UpKey:       parseKey(spec.UpKey, ebiten.KeyE),
		DownKey:     parseKey(spec.DownKey, ebiten.KeyQ),
		ReleaseKey:  parseKey(spec.ReleaseKey, ebiten.KeyEscape),
	}
}

// PixelationFromSpec converts the spec without validating it; the
// pixelation system clamps invalid values when it applies them.
func PixelationFromSpec(spec prefabs.PixelationSpec) component.Pixelation {
	return component.Pixelation{
		Mode:        parseMode(spec.Mode),
		ScaleFactor: spec.ScaleFactor,
		Target:      component.ScreenSize{Width: spec.TargetWidth, Height: spec.TargetHeight},
		Enabled:     spec.Enabled,
	}
}

func parseMode(s string) component.PixelationMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resize":
		return component.PixelationResize
	case "scale", "":
		return component.PixelationScale
	default:
		log.Printf("camera: unknown pixelation mode %q, using scale", s)
		return component.PixelationScale
	}
}

func parseKey(s string, fallback ebiten.Key) ebiten.Key {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(s)); err != nil {
		log.Printf("camera: unknown key %q, using %s", s, fallback)
		return fallback
	}
	return k
}
