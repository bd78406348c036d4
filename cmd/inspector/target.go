package main

import (
	"log"

	"github.com/milk9111/flycam/ecs/entity"
	"github.com/milk9111/flycam/ecs/system"
	"github.com/milk9111/flycam/inspector"
	"github.com/milk9111/flycam/prefabs"
)

// cameraTarget is the inspected object: the camera spec plus the condition
// registry its inspector rules resolve against.
type cameraTarget struct {
	spec       *prefabs.CameraSpec
	conditions *inspector.Conditions
}

func newCameraTarget(spec *prefabs.CameraSpec, expressions map[string]string) *cameraTarget {
	t := &cameraTarget{spec: spec}

	base := inspector.NewConditions().
		Field("pixelation_enabled", &spec.Pixelation.Enabled).
		Field("invert_y", &spec.FlyCamera.InvertY).
		Method("scale_mode", func() bool { return spec.Pixelation.Mode != "resize" }).
		Method("resize_mode", func() bool { return spec.Pixelation.Mode == "resize" })

	// Script conditions sit on a derived layer so they can shadow built-ins.
	derived := base.Extend()
	for name, src := range expressions {
		x, err := inspector.CompileExpression(src, t.snapshot)
		if err != nil {
			log.Printf("inspector: expression %q: %v", name, err)
			continue
		}
		derived.Probe(name, x.Condition())
	}
	t.conditions = derived
	return t
}

func (t *cameraTarget) Lookup(name string) (inspector.Condition, bool) {
	return t.conditions.Lookup(name)
}

// snapshot exposes the spec values to tengo expressions.
func (t *cameraTarget) snapshot() map[string]any {
	p := t.spec.Pixelation
	f := t.spec.FlyCamera
	return map[string]any{
		"enabled":       p.Enabled,
		"mode":          p.Mode,
		"scale_factor":  p.ScaleFactor,
		"target_width":  p.TargetWidth,
		"target_height": p.TargetHeight,
		"target_pixels": p.TargetWidth * p.TargetHeight,
		"move_speed":    f.MoveSpeed,
		"sensitivity":   f.Sensitivity,
		"invert_y":      f.InvertY,
	}
}

// validate clamps the pixelation values the same way the game does and
// reports whether the spec changed.
func (t *cameraTarget) validate() bool {
	cfg := entity.PixelationFromSpec(t.spec.Pixelation)
	if !system.ValidatePixelation(&cfg, log.Printf) {
		return false
	}
	t.spec.Pixelation.ScaleFactor = cfg.ScaleFactor
	t.spec.Pixelation.TargetWidth = cfg.Target.Width
	t.spec.Pixelation.TargetHeight = cfg.Target.Height
	return true
}
