package main

import (
	"testing"

	"github.com/milk9111/flycam/inspector"
	"github.com/milk9111/flycam/prefabs"
)

func loadRules(t *testing.T) *prefabs.InspectorSpec {
	t.Helper()
	rules, err := prefabs.LoadInspectorSpec()
	if err != nil {
		t.Fatalf("load inspector spec: %v", err)
	}
	return rules
}

func layoutOf(t *testing.T, rules *prefabs.InspectorSpec, target *cameraTarget, field string) inspector.FieldLayout {
	t.Helper()
	rule, ok := rules.Rule(field)
	if !ok {
		t.Fatalf("no rule for %s", field)
	}
	l := inspector.Layout(rule, target, fieldHeight)
	if l.Err != nil {
		t.Fatalf("%s: unexpected rule error %v", field, l.Err)
	}
	return l
}

func TestCameraTargetRules(t *testing.T) {
	rules := loadRules(t)
	spec := &prefabs.CameraSpec{
		FlyCamera:  prefabs.FlyCameraSpec{Sensitivity: 0.1},
		Pixelation: prefabs.PixelationSpec{Enabled: true, Mode: "scale", ScaleFactor: 4, TargetWidth: 320, TargetHeight: 180},
	}
	target := newCameraTarget(spec, rules.Expressions)

	cases := []struct {
		name    string
		mutate  func()
		field   string
		visible bool
		enabled bool
	}{
		{"scale_shows_factor", func() {}, "scale_factor", true, true},
		{"scale_hides_width", func() {}, "target_width", false, false},
		{"resize_shows_height", func() { spec.Pixelation.Mode = "resize" }, "target_height", true, true},
		{"resize_hides_factor", func() {}, "scale_factor", false, false},
		{"tiny_target_hint", func() {}, "low_res_hint", true, true},
		{"large_target_hides_hint", func() { spec.Pixelation.TargetWidth = 1920 }, "low_res_hint", false, false},
		{"disabled_mode_read_only", func() { spec.Pixelation.Enabled = false }, "mode", true, false},
		{"disabled_hides_height", func() {}, "target_height", false, false},
		{"look_enables_invert", func() {}, "invert_y", true, true},
		{"no_look_disables_invert", func() { spec.FlyCamera.Sensitivity = 0 }, "invert_y", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.mutate()
			l := layoutOf(t, rules, target, c.field)
			if l.Visible != c.visible || l.Enabled != c.enabled {
				t.Fatalf("expected visible=%v enabled=%v, got %+v", c.visible, c.enabled, l)
			}
			if c.visible && l.Height != fieldHeight {
				t.Fatalf("expected height %d, got %v", fieldHeight, l.Height)
			}
			if !c.visible && l.Height != 0 {
				t.Fatalf("expected zero height, got %v", l.Height)
			}
		})
	}
}

func TestCameraTargetValidate(t *testing.T) {
	spec := &prefabs.CameraSpec{
		Pixelation: prefabs.PixelationSpec{Mode: "scale", ScaleFactor: 0, TargetWidth: 0, TargetHeight: 10},
	}
	target := newCameraTarget(spec, nil)
	if !target.validate() {
		t.Fatalf("expected validation to clamp")
	}
	if spec.Pixelation.ScaleFactor != 1 || spec.Pixelation.TargetWidth != 320 || spec.Pixelation.TargetHeight != 180 {
		t.Fatalf("unexpected clamped spec %+v", spec.Pixelation)
	}
	if target.validate() {
		t.Fatalf("expected already valid spec unchanged")
	}
}

func TestCameraTargetBadExpressionSkipped(t *testing.T) {
	spec := &prefabs.CameraSpec{}
	target := newCameraTarget(spec, map[string]string{"broken": "sensitivity >"})
	if _, ok := target.Lookup("broken"); ok {
		t.Fatalf("expected broken expression not registered")
	}
	ev := inspector.Evaluate(inspector.Rule{Conditions: []string{"broken"}}, target)
	if !ev.Satisfied || ev.Err == nil {
		t.Fatalf("expected fail-open with authoring error, got %+v", ev)
	}
}
